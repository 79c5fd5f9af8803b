package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ProjectRow is one line of the pricing table. Money fields are formatted.
type ProjectRow struct {
	ID              string
	Index           int
	System          string
	Capacity        string
	Qty             int
	BasePrice       string
	GSTAmount       string
	ProjectValue    string
	SubsidyAmount   string
	CustomerPayment string
}

// ProjectTypeOption is one entry of the add-project type dropdown.
type ProjectTypeOption struct {
	Value string
	Label string
}

// QuotationViewData is the page model for the quotation detail page: the
// pricing table, the totals block and the add-project controls. The per-field
// wizard forms are driven by the front-end script against the edit endpoint.
type QuotationViewData struct {
	ID            string
	QuotationNo   string
	CustomerName  string
	CustomerPhone string
	PropertyType  string
	Status        string
	AdvancePct    float64

	Rows []ProjectRow

	TotalSystemCost      string
	TotalGSTAmount       string
	TotalWithGST         string
	TotalSubsidyAmount   string
	TotalCustomerPayment string
	AdvanceAmount        string
	BalanceAmount        string
	AmountInWords        string

	ProjectTypeOptions  []ProjectTypeOption
	PropertyTypeOptions []string

	// CatalogJSON is the pre-marshaled dropdown catalog consumed by the
	// wizard script.
	CatalogJSON string
}

// QuotationViewPage renders the quotation detail page.
func QuotationViewPage(data QuotationViewData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="page-header">
<h1>%s</h1>
<div class="header-actions">
<a href="/quotations/%s/export/pdf" class="btn">Download PDF</a>
<a href="/quotations/%s/export/excel" class="btn">Download Excel</a>
</div>
</div>
<section class="customer-card" id="quotation-settings" data-quotation-id="%s">
<form hx-post="/quotations/%s/settings" hx-swap="none">
<label>Customer <input type="text" name="customer_name" value="%s"></label>
<label>Phone <input type="text" name="customer_phone" value="%s"></label>
<label>Property
<select name="property_type">
`, esc(data.QuotationNo), esc(data.ID), esc(data.ID), esc(data.ID), esc(data.ID),
			esc(data.CustomerName), esc(data.CustomerPhone)); err != nil {
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

		if _, err := fmt.Fprintf(w, `</select>
</label>
<label>Advance %% <input type="number" name="advance_payment_percentage" value="%g" min="0" max="100"></label>
<label>Status
<select name="status">
`, data.AdvancePct); err != nil {
			return err
		}

		for _, s := range []string{"draft", "submitted", "discarded"} {
			selected := ""
			if s == data.Status {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, s, selected, s); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</select>
</label>
<button type="submit" class="btn btn-primary btn-sm">Save</button>
</form>
</section>
<table class="data-table pricing-table">
<thead><tr><th>#</th><th>System</th><th>Capacity</th><th class="num">Qty</th><th class="num">Base Price</th><th class="num">GST</th><th class="num">Project Value</th><th class="num">Subsidy</th><th class="num">Customer Payment</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, row := range data.Rows {
			if _, err := fmt.Fprintf(w, `<tr class="project-row" data-project-id="%s">
<td>%d</td>
<td><button class="link project-open" data-project-id="%s">%s</button></td>
<td>%s</td>
<td class="num">%d</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td><button class="btn btn-danger btn-sm" hx-delete="/quotations/%s/projects/%s" hx-confirm="Remove this system?">Remove</button></td>
</tr>
`, esc(row.ID), row.Index, esc(row.ID), esc(row.System), esc(row.Capacity), row.Qty,
				esc(row.BasePrice), esc(row.GSTAmount), esc(row.ProjectValue),
				esc(row.SubsidyAmount), esc(row.CustomerPayment), esc(data.ID), esc(row.ID)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</tbody>
</table>
<form class="add-project" hx-post="/quotations/%s/projects" hx-swap="none">
<select name="project_type">
`, esc(data.ID)); err != nil {
			return err
		}

		for _, opt := range data.ProjectTypeOptions {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>
`, esc(opt.Value), esc(opt.Label)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</select>
<button type="submit" class="btn btn-primary">Add System</button>
</form>
<section class="totals-card">
<dl>
<dt>Total System Cost</dt><dd>%s</dd>
<dt>Total GST</dt><dd>%s</dd>
<dt>Total with GST</dt><dd>%s</dd>
<dt>Subsidy</dt><dd>%s</dd>
<dt>Customer Payment</dt><dd class="grand-total">%s</dd>
<dt>Advance (%g%%)</dt><dd>%s</dd>
<dt>Balance</dt><dd>%s</dd>
</dl>
<p class="amount-in-words">%s</p>
</section>
`, esc(data.TotalSystemCost), esc(data.TotalGSTAmount), esc(data.TotalWithGST),
			esc(data.TotalSubsidyAmount), esc(data.TotalCustomerPayment),
			data.AdvancePct, esc(data.AdvanceAmount), esc(data.BalanceAmount),
			esc(data.AmountInWords)); err != nil {
			return err
		}

		// CatalogJSON is produced by json.Marshal in the handler; no further
		// escaping is needed inside the JSON script block.
		_, err := fmt.Fprintf(w, `<script type="application/json" id="wizard-catalog">%s</script>
`, data.CatalogJSON)
		return err
	})

	return Layout(data.QuotationNo, content)
}
