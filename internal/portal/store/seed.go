package store

import "github.com/aquiroz/invoiceportal/internal/portal/models"

// Demo data written by SeedIfEmpty on first run.
var (
	seedAccounts = []models.Account{
		{
			ID:         "u_admin",
			Name:       "Administrador Principal",
			Email:      "admin@portal.com",
			Secret:     "admin123",
			DocumentID: "00000000",
			Role:       models.RoleAdmin,
		},
		{
			ID:         "u_demo",
			Name:       "Erika Niño",
			Email:      "user@portal.com",
			Secret:     "user123",
			DocumentID: "12345",
			Role:       models.RoleStandard,
		},
	}

	seedInvoices = []models.Invoice{
		{
			ID:        "inv_1",
			Title:     "Factura Servicio Enero",
			Amount:    150.00,
			Date:      "2023-10-15",
			Status:    models.StatusPaid,
			AccountID: "u_demo",
			FileName:  "factura-enero.pdf",
			FileURL:   "#",
		},
		{
			ID:         "inv_2",
			Title:      "Transporte a Barrancabermeja",
			Amount:     1250.50,
			Date:       "2023-10-20",
			Status:     models.StatusPending,
			DocumentID: "12345",
			FileName:   "equipos.pdf",
			FileURL:    "#",
		},
	}
)
