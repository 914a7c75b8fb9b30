package views

import (
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/dsl"
	"github.com/aretw0/canopy/pkg/widget"
)

// ContactForm renders the demo-request form. Field names (user_name, email,
// reason, message) match what the submit_contact_form handler validates.
func ContactForm() widget.Node {
	return dsl.Card("contact-form-01").Size("md").Theme("light").
		Background("#ffffff").Padding("lg").Children(
		dsl.Title("Request a Demo").Size("xl").Weight("bold").TextAlign("center"),
		dsl.Text("Fill out the form and we'll get in touch shortly.").
			Size("sm").Color("#666").TextAlign("center"),
		dsl.Divider().Spacing("md"),
		dsl.Form(widget.NewAction(domain.ActionSubmitContactForm, map[string]any{})).Gap("md").Children(
			labeledField("Your Name *", dsl.EditableText(widget.Editable{
				Name:         "user_name",
				Placeholder:  "Enter your full name",
				Required:     true,
				AutoComplete: "name",
			})),
			labeledField("Email Address *", dsl.EditableText(widget.Editable{
				Name:         "email",
				Placeholder:  "your@email.com",
				Required:     true,
				AutoComplete: "email",
				Pattern:      `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
			})),
			labeledField("Reason for Contact *", dsl.Select("reason",
				widget.SelectOption{Label: "Schedule Demo", Value: "demo"},
				widget.SelectOption{Label: "Sales Inquiry", Value: "sales"},
				widget.SelectOption{Label: "Technical Support", Value: "support"},
				widget.SelectOption{Label: "Partnership Opportunity", Value: "partnership"},
				widget.SelectOption{Label: "General Question", Value: "general"},
			).Variant("outline")),
			labeledField("Message", dsl.EditableText(widget.Editable{
				Name:        "message",
				Placeholder: "Tell us more about your needs...",
			})),
			dsl.Button("Submit Request").Style("primary").Variant("solid").Block().Size("lg"),
		),
	).Build()
}

// SuccessMessage renders the post-submission confirmation card.
func SuccessMessage() widget.Node {
	return dsl.Card("success-message").Size("md").Theme("light").
		Background("#f0fdf4").Padding("lg").Radius("lg").Children(
		dsl.Row().Gap("md").Align("center").Children(
			dsl.Icon("check-circle").Color("#16a34a").Size("xl"),
			dsl.Col().Gap("xs").Children(
				dsl.Title("Success!").Size("lg").Color("#15803d").Weight("bold"),
				dsl.Text("Your request has been submitted successfully. We'll get back to you soon.").
					Size("sm").Color("#166534"),
			),
		),
	).Build()
}

func labeledField(label string, field *dsl.NodeBuilder) *dsl.NodeBuilder {
	return dsl.Col().Gap("xs").Children(
		dsl.Text(label).Size("sm").Weight("medium"),
		field,
	)
}
