package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuotationListItem is one row of the quotation index page. Money fields are
// already formatted for display.
type QuotationListItem struct {
	ID              string
	QuotationNo     string
	CustomerName    string
	PropertyType    string
	Status          string
	CustomerPayment string
	CreatedDate     string
}

// QuotationListData is the page model for GET /quotations.
type QuotationListData struct {
	Quotations []QuotationListItem
}

// QuotationListPage renders the quotation index.
func QuotationListPage(data QuotationListData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Quotations</h1>
<a href="/quotations/create" class="btn btn-primary">New Quotation</a>
</div>
`); err != nil {
			return err
		}

		if len(data.Quotations) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No quotations yet. Create one to get started.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table">
<thead><tr><th>No.</th><th>Customer</th><th>Property</th><th>Status</th><th class="num">Customer Payment</th><th>Created</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, q := range data.Quotations {
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/quotations/%s">%s</a></td>
<td>%s</td>
<td>%s</td>
<td><span class="status status-%s">%s</span></td>
<td class="num">%s</td>
<td>%s</td>
<td><button class="btn btn-danger btn-sm" hx-delete="/quotations/%s" hx-confirm="Delete this quotation?">Delete</button></td>
</tr>
`, esc(q.ID), esc(q.QuotationNo), esc(q.CustomerName), esc(q.PropertyType),
				esc(q.Status), esc(q.Status), esc(q.CustomerPayment), esc(q.CreatedDate), esc(q.ID)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	})

	return Layout("Quotations", content)
}
