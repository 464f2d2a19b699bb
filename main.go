package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/collections"
	"solarquotation/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/api/catalog/products", handlers.HandleProductList(app))
		se.Router.GET("/api/catalog/makes", handlers.HandleMakeList(app))
		se.Router.GET("/api/catalog/project-prices", handlers.HandleProjectPriceList(app))
		se.Router.GET("/api/catalog/states", handlers.HandleStateList(app))

		// ── Quotation form support ───────────────────────────────
		se.Router.GET("/api/project-prices/{id}/form-patch", handlers.HandleProjectPriceFormPatch(app))
		se.Router.POST("/api/quotations/totals", handlers.HandleQuotationTotals(app))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/api/quotations/{id}", handlers.HandleQuotationView(app))
		se.Router.PUT("/api/quotations/{id}", handlers.HandleQuotationUpdate(app))
		se.Router.PATCH("/api/quotations/{id}/status", handlers.HandleQuotationStatus(app))
		se.Router.DELETE("/api/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Quotation export ─────────────────────────────────────
		se.Router.GET("/api/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app))
		se.Router.GET("/api/quotations/{id}/export/excel", handlers.HandleQuotationExportExcel(app))

		// ── Sales orders ─────────────────────────────────────────
		se.Router.GET("/api/sales-orders", handlers.HandleSalesOrderList(app))
		se.Router.POST("/api/sales-orders", handlers.HandleSalesOrderCreate(app))
		se.Router.GET("/api/sales-orders/{id}", handlers.HandleSalesOrderView(app))
		se.Router.DELETE("/api/sales-orders/{id}", handlers.HandleSalesOrderDelete(app))

		// ── Shipments ────────────────────────────────────────────
		se.Router.GET("/api/shipments", handlers.HandleShipmentList(app))
		se.Router.POST("/api/shipments", handlers.HandleShipmentCreate(app))
		se.Router.PATCH("/api/shipments/{id}/status", handlers.HandleShipmentStatus(app))

		// ── Delivery challans ────────────────────────────────────
		se.Router.GET("/api/challans", handlers.HandleChallanList(app))
		se.Router.POST("/api/challans", handlers.HandleChallanCreate(app))
		se.Router.GET("/api/challans/{id}", handlers.HandleChallanView(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
