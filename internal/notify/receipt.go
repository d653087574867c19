package notify

import (
	"fmt"
	"strings"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

const senderAddress = "no-reply@learnsphere.com"

// Receipt is the rendered confirmation email for a completed order.
type Receipt struct {
	To      string
	Subject string
	Body    string
}

// RenderReceipt builds the personalized plain-text receipt for an order.
func RenderReceipt(order domain.Order) Receipt {
	subject := fmt.Sprintf("Order Confirmation: %s - LearnSphere", order.PaymentReference)

	var courseList strings.Builder
	for _, name := range order.Courses {
		fmt.Fprintf(&courseList, "  - %s\n", name)
	}

	body := fmt.Sprintf(`FROM: %s
TO: %s
SUBJECT: %s

Dear %s,

Thank you for choosing LearnSphere! Your payment has been successfully processed.
Here are the details of your purchase:

ORDER SUMMARY
=========================================
Transaction ID : %s
Date           : %s
Total Paid     : %.2f
=========================================

COURSES UNLOCKED:
%s
You can now access your course materials from your dashboard.
We hope you enjoy your learning journey!

Best regards,
The LearnSphere Team
`,
		senderAddress,
		order.PayerEmail,
		subject,
		order.CustomerName,
		order.PaymentReference,
		order.CreatedAt.Format("02 Jan 2006 15:04 MST"),
		order.TotalAmount,
		courseList.String(),
	)

	return Receipt{
		To:      order.PayerEmail,
		Subject: subject,
		Body:    body,
	}
}
