package repositories

import (
	"context"
	"errors"
	"testing"

	"becak/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDriverLookupFromTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM drivers").WithArgs("DLM-009").
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_code", "name", "transport"}).
			AddRow("DLM-009", "Pak Harjo", ""))

	d, err := DriverRepository{DB: db}.FindByVehicleCode(context.Background(), " dlm-009 ")
	if err != nil {
		t.Fatalf("FindByVehicleCode error: %v", err)
	}
	if d.Name != "Pak Harjo" || d.Transport != domain.TransportDelman {
		t.Fatalf("driver = %+v", d)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDriverLookupFallsBackOnDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM drivers").WithArgs("BCK-002").WillReturnError(errors.New("db down"))

	d, err := DriverRepository{DB: db}.FindByVehicleCode(context.Background(), "BCK-002")
	if err != nil {
		t.Fatalf("FindByVehicleCode error: %v", err)
	}
	if d.Name != "Pak Joko" {
		t.Fatalf("driver = %+v", d)
	}
}

func TestDriverLookupWithoutDB(t *testing.T) {
	repo := DriverRepository{}
	if d, err := repo.FindByVehicleCode(context.Background(), "BCK-001"); err != nil || d.Name != "Pak Slamet" {
		t.Fatalf("BCK-001: %+v %v", d, err)
	}
	if _, err := repo.FindByVehicleCode(context.Background(), "XYZ-1"); !domain.IsNotFound(err) {
		t.Fatalf("unknown code: %v", err)
	}
	if _, err := repo.FindByVehicleCode(context.Background(), ""); !domain.IsValidation(err) {
		t.Fatalf("empty code: %v", err)
	}
}
