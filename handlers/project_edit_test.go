package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"solarquote/services"
	"solarquote/testhelpers"
)

func editRequest(quotationID, projectID string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost,
		"/quotations/"+quotationID+"/projects/"+projectID+"/edit",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("quotationId", quotationID)
	req.SetPathValue("id", projectID)
	return req, httptest.NewRecorder()
}

func TestHandleProjectEdit_ForwardPricing(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	project := testhelpers.CreateTestProject(t, app, quotation.Id, services.ProjectOnGrid)

	handler := HandleProjectEdit(app)

	form := url.Values{}
	form.Set("panel_watts", "545")
	form.Set("dcr_panel_count", "4")
	form.Set("non_dcr_panel_count", "2")
	form.Set("project_value", "100000")

	req, rec := editRequest(quotation.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	// 6 panels at 545 W is 3.27 kW raw, 3 kW rounded.
	updated, err := app.FindRecordById("projects", project.Id)
	if err != nil {
		t.Fatalf("could not reload project: %v", err)
	}
	if got := updated.GetFloat("system_kw"); got != 3.27 {
		t.Errorf("system_kw = %v, want 3.27", got)
	}
	if got := updated.GetFloat("base_price"); got != 91827 {
		t.Errorf("base_price = %v, want 91827", got)
	}
	if got := updated.GetFloat("gst_amount"); got != 8173 {
		t.Errorf("gst_amount = %v, want 8173", got)
	}
	if got := updated.GetFloat("price_per_kw"); got != 30609 {
		t.Errorf("price_per_kw = %v, want 30609", got)
	}
	if got := updated.GetFloat("subsidy_amount"); got != 78000 {
		t.Errorf("subsidy_amount = %v, want 78000", got)
	}
	if got := updated.GetFloat("customer_payment"); got != 22000 {
		t.Errorf("customer_payment = %v, want 22000", got)
	}

	// Quotation totals were re-aggregated from the full project list.
	reloaded, err := app.FindRecordById("quotations", quotation.Id)
	if err != nil {
		t.Fatalf("could not reload quotation: %v", err)
	}
	if got := reloaded.GetFloat("total_with_gst"); got != 100000 {
		t.Errorf("total_with_gst = %v, want 100000", got)
	}
	if got := reloaded.GetFloat("total_customer_payment"); got != 22000 {
		t.Errorf("total_customer_payment = %v, want 22000", got)
	}
	// 30% advance on 22000.
	if got := reloaded.GetFloat("advance_amount"); got != 6600 {
		t.Errorf("advance_amount = %v, want 6600", got)
	}

	var payload struct {
		Project struct {
			ProjectValue float64 `json:"projectValue"`
			SystemKW     float64 `json:"systemKw"`
		} `json:"project"`
		Totals struct {
			TotalCustomerPayment float64 `json:"totalCustomerPayment"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.Project.ProjectValue != 100000 {
		t.Errorf("response projectValue = %v, want 100000", payload.Project.ProjectValue)
	}
	if payload.Totals.TotalCustomerPayment != 22000 {
		t.Errorf("response totalCustomerPayment = %v, want 22000", payload.Totals.TotalCustomerPayment)
	}
}

func TestHandleProjectEdit_RatePathAfterPanelEdit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	project := testhelpers.CreateDerivedTestProject(t, app, quotation.Id, services.ProjectOnGrid,
		services.SetPanelWatts{Watts: "545"},
		services.SetDCRPanelCount{Count: 4},
		services.SetNonDCRPanelCount{Count: 2},
	)

	handler := HandleProjectEdit(app)

	form := url.Values{}
	form.Set("price_per_kw", "40000")

	req, rec := editRequest(quotation.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	// 3 kW rounded times 40000 per kW, GST 8.9% on top.
	updated, _ := app.FindRecordById("projects", project.Id)
	if got := updated.GetFloat("base_price"); got != 120000 {
		t.Errorf("base_price = %v, want 120000", got)
	}
	if got := updated.GetFloat("gst_amount"); got != 10680 {
		t.Errorf("gst_amount = %v, want 10680", got)
	}
	if got := updated.GetFloat("project_value"); got != 130680 {
		t.Errorf("project_value = %v, want 130680", got)
	}
}

func TestHandleProjectEdit_EditNotApplicable(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	project := testhelpers.CreateTestProject(t, app, quotation.Id, services.ProjectOnGrid)

	handler := HandleProjectEdit(app)

	// On-grid has no battery bank.
	form := url.Values{}
	form.Set("battery_ah", "200")

	req, rec := editRequest(quotation.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422; body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleProjectEdit_UnknownFieldIgnoredButEmptyFormRejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	project := testhelpers.CreateTestProject(t, app, quotation.Id, services.ProjectOnGrid)

	handler := HandleProjectEdit(app)

	form := url.Values{}
	form.Set("no_such_field", "42")

	req, rec := editRequest(quotation.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleProjectEdit_InvalidPhaseValue(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	project := testhelpers.CreateTestProject(t, app, quotation.Id, services.ProjectOnGrid)

	handler := HandleProjectEdit(app)

	form := url.Values{}
	form.Set("inverter_phase", "two_phase")

	req, rec := editRequest(quotation.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleProjectEdit_ProjectFromOtherQuotation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotationA := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	quotationB := testhelpers.CreateTestQuotation(t, app, "Vikram Rao")
	project := testhelpers.CreateTestProject(t, app, quotationB.Id, services.ProjectOnGrid)

	handler := HandleProjectEdit(app)

	form := url.Values{}
	form.Set("project_value", "50000")

	req, rec := editRequest(quotationA.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestHandleProjectEdit_ServiceVariantQty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")
	project := testhelpers.CreateTestProject(t, app, quotation.Id, services.ProjectWaterHeater)

	handler := HandleProjectEdit(app)

	form := url.Values{}
	form.Set("litre", "200")
	form.Set("project_value", "10000")
	form.Set("qty", "2")

	req, rec := editRequest(quotation.Id, project.Id, form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	// Quantity multiplies only the customer payment; the stored project value
	// stays per unit and is what the quotation sums.
	updated, _ := app.FindRecordById("projects", project.Id)
	if got := updated.GetFloat("project_value"); got != 10000 {
		t.Errorf("project_value = %v, want 10000", got)
	}
	if got := updated.GetFloat("customer_payment"); got != 20000 {
		t.Errorf("customer_payment = %v, want 20000", got)
	}

	reloaded, _ := app.FindRecordById("quotations", quotation.Id)
	if got := reloaded.GetFloat("total_with_gst"); got != 10000 {
		t.Errorf("total_with_gst = %v, want 10000", got)
	}
}
