package services

import (
	"context"
	"fmt"
	"testing"

	"becak/internal/apiclient"
	"becak/internal/domain"
)

func TestErrorMessageLookup(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		err  error
		want string
	}{
		{"nil", OpCreateOrder, nil, ""},
		{"validation", OpCreateOrder, domain.ValidationError{Msg: msgPhoneRequired}, msgPhoneRequired},
		{"network", OpFetchOrders, errBackendDown, msgNetwork},
		{"unauthorized", OpListTariffs, &apiclient.HTTPError{Status: 401}, msgUnauthorized},
		{"forbidden", OpDeleteTariff, &apiclient.HTTPError{Status: 403, Message: "nope"}, msgForbidden},
		{"server text wins", OpCreateOrder, &apiclient.HTTPError{Status: 422, Message: "Telepon tidak valid"}, "Telepon tidak valid"},
		{"status table", OpAcceptOrder, &apiclient.HTTPError{Status: 409}, "Pesanan sudah diambil pengemudi lain."},
		{"operation default", OpCompleteOrder, &apiclient.HTTPError{Status: 500}, "Gagal menyelesaikan pesanan."},
		{"wrapped", OpToggleTariff, fmt.Errorf("toggle: %w", &apiclient.HTTPError{Status: 404}), "Tarif tidak ditemukan."},
		{"canceled", OpConfirmPayment, context.Canceled, msgCanceled},
		{"unknown op", Operation("x"), &apiclient.HTTPError{Status: 500}, msgGeneric},
	}
	for _, tc := range cases {
		if got := ErrorMessage(tc.op, tc.err); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
