package services

import (
	"context"
	"errors"

	"becak/internal/apiclient"
	"becak/internal/domain"
)

// Operation names a store or screen action for error-message lookup.
type Operation string

const (
	OpCreateOrder       Operation = "create_order"
	OpFetchOrders       Operation = "fetch_orders"
	OpFetchDriverOrders Operation = "fetch_driver_orders"
	OpAcceptOrder       Operation = "accept_order"
	OpCompleteOrder     Operation = "complete_order"
	OpCancelOrder       Operation = "cancel_order"
	OpLoadTariffs       Operation = "load_tariffs"
	OpListTariffs       Operation = "list_tariffs"
	OpCreateTariff      Operation = "create_tariff"
	OpUpdateTariff      Operation = "update_tariff"
	OpDeleteTariff      Operation = "delete_tariff"
	OpToggleTariff      Operation = "toggle_tariff"
	OpConfirmPayment    Operation = "confirm_payment"
	OpLogin             Operation = "login"
	OpFindCustomer      Operation = "find_customer"
)

const (
	msgNetwork      = "Tidak dapat terhubung ke server. Periksa koneksi internet Anda."
	msgUnauthorized = "Sesi Anda telah berakhir. Silakan login kembali."
	msgForbidden    = "Anda tidak memiliki izin untuk melakukan aksi ini."
	msgCanceled     = "Permintaan dibatalkan."
	msgGeneric      = "Terjadi kesalahan. Silakan coba lagi."
)

var defaultMessages = map[Operation]string{
	OpCreateOrder:       "Gagal membuat pesanan. Silakan coba lagi.",
	OpFetchOrders:       "Gagal memuat daftar pesanan.",
	OpFetchDriverOrders: "Gagal memuat pesanan pengemudi.",
	OpAcceptOrder:       "Gagal menerima pesanan.",
	OpCompleteOrder:     "Gagal menyelesaikan pesanan.",
	OpCancelOrder:       "Gagal membatalkan pesanan.",
	OpLoadTariffs:       "Gagal memuat tarif.",
	OpListTariffs:       "Gagal memuat data tarif.",
	OpCreateTariff:      "Gagal menambahkan tarif.",
	OpUpdateTariff:      "Gagal memperbarui tarif.",
	OpDeleteTariff:      "Gagal menghapus tarif.",
	OpToggleTariff:      "Gagal mengubah status tarif.",
	OpConfirmPayment:    "Pembayaran gagal diproses.",
	OpLogin:             "Gagal login. Silakan coba lagi.",
	OpFindCustomer:      "Gagal memuat data pelanggan.",
}

type messageKey struct {
	op     Operation
	status int
}

var statusMessages = map[messageKey]string{
	{OpCreateOrder, 400}:   "Data pesanan tidak valid.",
	{OpCreateOrder, 422}:   "Data pesanan tidak valid.",
	{OpCreateOrder, 404}:   "Kode kendaraan tidak terdaftar.",
	{OpAcceptOrder, 404}:   "Pesanan tidak ditemukan.",
	{OpAcceptOrder, 409}:   "Pesanan sudah diambil pengemudi lain.",
	{OpCompleteOrder, 404}: "Pesanan tidak ditemukan.",
	{OpCompleteOrder, 409}: "Pesanan belum diterima pengemudi.",
	{OpCancelOrder, 404}:   "Pesanan tidak ditemukan.",
	{OpCancelOrder, 409}:   "Pesanan tidak dapat dibatalkan.",
	{OpCreateTariff, 400}:  "Data tarif tidak valid.",
	{OpCreateTariff, 422}:  "Data tarif tidak valid.",
	{OpCreateTariff, 409}:  "Nama tarif sudah digunakan.",
	{OpUpdateTariff, 400}:  "Data tarif tidak valid.",
	{OpUpdateTariff, 422}:  "Data tarif tidak valid.",
	{OpUpdateTariff, 404}:  "Tarif tidak ditemukan.",
	{OpDeleteTariff, 404}:  "Tarif tidak ditemukan.",
	{OpDeleteTariff, 409}:  "Tarif masih digunakan oleh pesanan dan tidak dapat dihapus.",
	{OpToggleTariff, 404}:  "Tarif tidak ditemukan.",
}

// ErrorMessage is the single place that turns a failed operation into the
// Indonesian text shown to the user.
//
// Lookup order: local domain errors carry their own text; network and
// permission failures use fixed texts; otherwise the server's message, then
// the (operation, status) entry, then the operation default.
func ErrorMessage(op Operation, err error) string {
	if err == nil {
		return ""
	}
	if domain.IsValidation(err) || domain.IsConflict(err) || domain.IsNotFound(err) {
		return err.Error()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return msgCanceled
	}

	he, ok := apiclient.AsHTTPError(err)
	if !ok {
		return defaultMessage(op)
	}
	switch he.Kind() {
	case apiclient.KindNetwork:
		return msgNetwork
	case apiclient.KindUnauthorized:
		return msgUnauthorized
	case apiclient.KindForbidden:
		return msgForbidden
	}
	if he.Message != "" {
		return he.Message
	}
	if m, ok := statusMessages[messageKey{op, he.Status}]; ok {
		return m
	}
	return defaultMessage(op)
}

func defaultMessage(op Operation) string {
	if m, ok := defaultMessages[op]; ok {
		return m
	}
	return msgGeneric
}
