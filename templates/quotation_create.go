package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuotationCreateData is the page model for the new-quotation form.
type QuotationCreateData struct {
	CustomerName        string
	CustomerPhone       string
	PropertyType        string
	AdvancePct          float64
	PropertyTypeOptions []string
	Errors              map[string]string
}

// QuotationCreatePage renders the new-quotation form, re-rendered with inline
// errors when validation fails.
func QuotationCreatePage(data QuotationCreateData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header"><h1>New Quotation</h1></div>
<form method="post" action="/quotations" class="form-card">
`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>Customer Name
<input type="text" name="customer_name" value="%s" required>
</label>
`, esc(data.CustomerName)); err != nil {
			return err
		}
		if err := fieldError(w, data.Errors, "customer_name"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>Phone
<input type="text" name="customer_phone" value="%s">
</label>
<label>Property Type
<select name="property_type">
`, esc(data.CustomerPhone)); err != nil {
			return err
		}

		for _, opt := range data.PropertyTypeOptions {
			selected := ""
			if opt == data.PropertyType {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(opt), selected, esc(opt)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</select>
</label>
<label>Advance Payment %%
<input type="number" name="advance_payment_percentage" value="%g" min="0" max="100" step="1">
</label>
<div class="form-actions">
<a href="/quotations" class="btn">Cancel</a>
<button type="submit" class="btn btn-primary">Create</button>
</div>
</form>
`, data.AdvancePct)
		return err
	})

	return Layout("New Quotation", content)
}
