package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"solarquote/testhelpers"
)

func TestHandleQuotationCreate_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/create", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"New Quotation",
		`name="customer_name"`,
		`name="property_type"`,
		"residential",
		"commercial",
	)
}

func TestHandleQuotationSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationSave(app)

	form := url.Values{}
	form.Set("customer_name", "Asha Nair")
	form.Set("customer_phone", "9876543210")
	form.Set("property_type", "residential")
	form.Set("advance_payment_percentage", "40")

	req := httptest.NewRequest(http.MethodPost, "/quotations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	records, err := app.FindAllRecords("quotations")
	if err != nil {
		t.Fatalf("could not query quotations: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("quotations = %d, want 1", len(records))
	}

	q := records[0]
	if got := q.GetString("customer_name"); got != "Asha Nair" {
		t.Errorf("customer_name = %q", got)
	}
	if got := q.GetString("status"); got != "draft" {
		t.Errorf("status = %q, want draft", got)
	}
	if got := q.GetFloat("advance_payment_percentage"); got != 40 {
		t.Errorf("advance_payment_percentage = %v, want 40", got)
	}

	wantNo := fmt.Sprintf("SQ-%d-001", time.Now().Year())
	if got := q.GetString("quotation_no"); got != wantNo {
		t.Errorf("quotation_no = %q, want %q", got, wantNo)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotations/"+q.Id)
}

func TestHandleQuotationSave_SequentialNumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationSave(app)

	for _, name := range []string{"First Customer", "Second Customer"} {
		form := url.Values{}
		form.Set("customer_name", name)
		req := httptest.NewRequest(http.MethodPost, "/quotations", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
	}

	records, err := app.FindRecordsByFilter("quotations", "id != ''", "quotation_no", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query quotations: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("quotations = %d, want 2", len(records))
	}

	year := time.Now().Year()
	if got := records[0].GetString("quotation_no"); got != fmt.Sprintf("SQ-%d-001", year) {
		t.Errorf("first quotation_no = %q", got)
	}
	if got := records[1].GetString("quotation_no"); got != fmt.Sprintf("SQ-%d-002", year) {
		t.Errorf("second quotation_no = %q", got)
	}
}

func TestHandleQuotationSave_MissingNameRerendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationSave(app)

	form := url.Values{}
	form.Set("customer_name", "   ")

	req := httptest.NewRequest(http.MethodPost, "/quotations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Customer name is required")

	records, _ := app.FindAllRecords("quotations")
	if len(records) != 0 {
		t.Errorf("quotations = %d after invalid submit, want 0", len(records))
	}
}

func TestHandleQuotationSave_DefaultsPropertyType(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationSave(app)

	form := url.Values{}
	form.Set("customer_name", "Asha Nair")

	req := httptest.NewRequest(http.MethodPost, "/quotations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, _ := app.FindAllRecords("quotations")
	if len(records) != 1 {
		t.Fatalf("quotations = %d, want 1", len(records))
	}
	if got := records[0].GetString("property_type"); got != "residential" {
		t.Errorf("property_type = %q, want residential", got)
	}
}
