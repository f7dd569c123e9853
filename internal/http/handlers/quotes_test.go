package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
)

const testTenderID = "2ee3aaed-e059-4d77-bae4-c2cbad468d48"

func quoteApp(t *testing.T, user *domain.User, tenders *fakeTenders, quotes *fakeQuotes) *App {
	t.Helper()
	users := &fakeUsers{users: map[string]*domain.User{user.ID: user}}
	return testApp(users, nil, tenders, quotes, nil)
}

func submitQuote(app *App, userID, tenderID, body string) *httptest.ResponseRecorder {
	req := withURLParam(authedPost("/v1/tenders/"+tenderID+"/quotes", userID, body), "id", tenderID)
	rr := httptest.NewRecorder()
	app.QuoteSubmit(rr, req)
	return rr
}

func TestQuoteSubmitSucceeds(t *testing.T) {
	user := freeUser("sub-1", nil)
	tenders := &fakeTenders{byID: map[string]*domain.Tender{
		testTenderID: {ID: testTenderID, OwnerID: "owner-1", Status: domain.TenderStatusPublished},
	}}
	quotes := &fakeQuotes{}
	app := quoteApp(t, user, tenders, quotes)

	rr := submitQuote(app, "sub-1", testTenderID, `{"amount_cents":150000,"message":"Can start Monday"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	var payload quoteDTO
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.TenderID != testTenderID || payload.UserID != "sub-1" || payload.AmountCents != 150000 {
		t.Fatalf("payload = %+v", payload)
	}
	if len(quotes.created) != 1 {
		t.Fatalf("created = %d, want 1", len(quotes.created))
	}
}

func TestQuoteSubmitAtCap(t *testing.T) {
	user := freeUser("sub-1", nil)
	tenders := &fakeTenders{byID: map[string]*domain.Tender{
		testTenderID: {ID: testTenderID, OwnerID: "owner-1"},
	}}
	quotes := &fakeQuotes{count: 3}
	app := quoteApp(t, user, tenders, quotes)

	rr := submitQuote(app, "sub-1", testTenderID, `{"amount_cents":100}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
	var payload map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["message"] != "Free plan allows up to 3 quotes per tender. Upgrade for unlimited." {
		t.Fatalf("message = %q", payload["message"])
	}
}

func TestQuoteSubmitPremiumUnlimited(t *testing.T) {
	user := premiumUser("sub-1", nil)
	tenders := &fakeTenders{byID: map[string]*domain.Tender{
		testTenderID: {ID: testTenderID, OwnerID: "owner-1"},
	}}
	app := quoteApp(t, user, tenders, &fakeQuotes{count: 99})

	rr := submitQuote(app, "sub-1", testTenderID, `{"amount_cents":100}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
}

func TestQuoteSubmitTenderNotFound(t *testing.T) {
	user := freeUser("sub-1", nil)
	app := quoteApp(t, user, &fakeTenders{byID: map[string]*domain.Tender{}}, &fakeQuotes{})

	rr := submitQuote(app, "sub-1", testTenderID, `{"amount_cents":100}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestQuoteSubmitOwnTenderForbidden(t *testing.T) {
	user := freeUser("owner-1", nil)
	tenders := &fakeTenders{byID: map[string]*domain.Tender{
		testTenderID: {ID: testTenderID, OwnerID: "owner-1"},
	}}
	app := quoteApp(t, user, tenders, &fakeQuotes{})

	rr := submitQuote(app, "owner-1", testTenderID, `{"amount_cents":100}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
}

func TestQuoteSubmitInvalidTenderID(t *testing.T) {
	user := freeUser("sub-1", nil)
	app := quoteApp(t, user, &fakeTenders{}, &fakeQuotes{})

	rr := submitQuote(app, "sub-1", "not-a-uuid", `{"amount_cents":100}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
