package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/nagulan1506/real-estate-app/payment"
)

func mockPayments() *payment.Service {
	return payment.NewService("", "", demoBackend())
}

func TestCreateOrderRequiresAmount(t *testing.T) {
	pc := NewPaymentController(mockPayments())

	for _, body := range []string{`{}`, `{"amount":0}`, `{"amount":-5}`} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/payment/order", body)
		if err := pc.CreateOrder(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: code %d", body, rec.Code)
		}
	}
}

func TestCreateOrderMock(t *testing.T) {
	pc := NewPaymentController(mockPayments())

	c, rec := newJSONContext(t, http.MethodPost, "/api/payment/order", `{"amount":500}`)
	if err := pc.CreateOrder(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d: %s", rec.Code, rec.Body.String())
	}

	var order map[string]interface{}
	decodeBody(t, rec, &order)
	id, _ := order["id"].(string)
	if !strings.HasPrefix(id, payment.MockOrderPrefix) {
		t.Errorf("order id = %q", id)
	}
	if order["mock"] != true {
		t.Errorf("mock flag = %v", order["mock"])
	}
	if order["amount"] != float64(50000) {
		t.Errorf("amount = %v, want 50000 paise", order["amount"])
	}
}

func TestVerifyPaymentMock(t *testing.T) {
	pc := NewPaymentController(mockPayments())

	c, rec := newJSONContext(t, http.MethodPost, "/api/payment/verify",
		`{"razorpay_order_id":"`+payment.MockOrderPrefix+`123","razorpay_payment_id":"pay_1","razorpay_signature":"x"}`)
	if err := pc.VerifyPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["success"] != true || body["message"] != "Mock payment verified" {
		t.Errorf("body = %v", body)
	}
}

func TestVerifyPaymentMissingOrder(t *testing.T) {
	pc := NewPaymentController(mockPayments())

	c, rec := newJSONContext(t, http.MethodPost, "/api/payment/verify", `{}`)
	if err := pc.VerifyPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code %d", rec.Code)
	}
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	pc := NewPaymentController(payment.NewService("rzp_test_key", "topsecret", demoBackend()))

	c, rec := newJSONContext(t, http.MethodPost, "/api/payment/verify",
		`{"razorpay_order_id":"order_real","razorpay_payment_id":"pay_1","razorpay_signature":"bogus"}`)
	if err := pc.VerifyPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["success"] != false || body["message"] != "Invalid signature" {
		t.Errorf("body = %v", body)
	}
}
