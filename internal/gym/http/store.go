package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/httpx"
)

// StoreHandler serves the supplement store for the admin portal.
type StoreHandler struct {
	ShopService *service.ShopService
}

// HandleListProducts handles GET /v1/admin/products
//
//	@Summary		List products
//	@Tags			Store
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Product			"Products, newest first"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/products [get].
func (h *StoreHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ShopService.ListProducts(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(products, product))
}

// HandleCreateProduct handles POST /v1/admin/products
//
//	@Summary		Create a product
//	@Tags			Store
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	gymsdk.Product				"Created product"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Router			/v1/admin/products [post].
func (h *StoreHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CreateProductRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ShopService.CreateProduct(r.Context(), httpx.SubjectFromContext(r.Context()), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, product(p))
}

// HandleUpdateProduct handles PATCH /v1/admin/products/{id}
//
//	@Summary		Update a product
//	@Tags			Store
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			request	body		gymsdk.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	gymsdk.Product				"Updated product"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed"
//	@Failure		404		{object}	gymsdk.ErrorResponse		"Not found"
//	@Router			/v1/admin/products/{id} [patch].
func (h *StoreHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdateProductRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.ShopService.UpdateProduct(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"), service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, product(p))
}

// HandleDeleteProduct handles DELETE /v1/admin/products/{id}
//
//	@Summary		Delete a product
//	@Tags			Store
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Product ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/admin/products/{id} [delete].
func (h *StoreHandler) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.ShopService.DeleteProduct(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListOrders handles GET /v1/admin/orders
//
//	@Summary		List orders
//	@Tags			Store
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		gymsdk.Order			"Orders with items, newest first"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/orders [get].
func (h *StoreHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ShopService.ListOrders(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAll(orders, order))
}

// HandleCreateOrder handles POST /v1/admin/orders
//
//	@Summary		Create an order
//	@Description	Records a sale, checking and taking stock for every item in one transaction.
//	@Tags			Store
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.CreateOrderRequest	true	"Customer and items"
//	@Success		201		{object}	gymsdk.Order				"Created order"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed or unknown products"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"Insufficient stock"
//	@Router			/v1/admin/orders [post].
func (h *StoreHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CreateOrderRequest
	if !decode(w, r, &req) {
		return
	}

	o, err := h.ShopService.CreateOrder(r.Context(), httpx.SubjectFromContext(r.Context()), service.OrderInput{
		MemberName: req.MemberName,
		MemberID:   req.MemberID,
		Items:      itemInputs(req.Items),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, order(o))
}

// HandleUpdateOrder handles PUT /v1/admin/orders/{id}
//
//	@Summary		Replace an order's items
//	@Description	Adjusts stock and sales by the per-product quantity difference.
//	@Tags			Store
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order ID"
//	@Param			request	body		gymsdk.CreateOrderRequest	true	"Customer and items"
//	@Success		200		{object}	gymsdk.Order				"Updated order"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"Validation failed or unknown products"
//	@Failure		404		{object}	gymsdk.ErrorResponse		"Not found"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"Insufficient stock"
//	@Router			/v1/admin/orders/{id} [put].
func (h *StoreHandler) HandleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.CreateOrderRequest
	if !decode(w, r, &req) {
		return
	}

	o, err := h.ShopService.UpdateOrder(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"), service.OrderInput{
		MemberName: req.MemberName,
		MemberID:   req.MemberID,
		Items:      itemInputs(req.Items),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order(o))
}

// HandleUpdateOrderStatus handles PATCH /v1/admin/orders/{id}/status
//
//	@Summary		Change order status
//	@Tags			Store
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID"
//	@Param			request	body		gymsdk.UpdateOrderStatusRequest	true	"Status and payment status"
//	@Success		200		{object}	gymsdk.Order					"Updated order"
//	@Failure		400		{object}	gymsdk.ErrorResponse			"Invalid status"
//	@Failure		404		{object}	gymsdk.ErrorResponse			"Not found"
//	@Router			/v1/admin/orders/{id}/status [patch].
func (h *StoreHandler) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.UpdateOrderStatusRequest
	if !decode(w, r, &req) {
		return
	}

	o, err := h.ShopService.UpdateOrderStatus(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id"), service.OrderStatusPatch{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order(o))
}

// HandleDeleteOrder handles DELETE /v1/admin/orders/{id}
//
//	@Summary		Delete an order
//	@Description	Puts the stock back and removes the order.
//	@Tags			Store
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Order ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"Not found"
//	@Router			/v1/admin/orders/{id} [delete].
func (h *StoreHandler) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.ShopService.DeleteOrder(r.Context(), httpx.SubjectFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAnalytics handles GET /v1/admin/store/analytics
//
//	@Summary		Store analytics
//	@Description	Revenue from paid orders, units sold, average order value, growth and top products.
//	@Tags			Store
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	gymsdk.StoreAnalytics	"Analytics"
//	@Failure		401	{object}	gymsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/admin/store/analytics [get].
func (h *StoreHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.ShopService.Analytics(r.Context(), httpx.SubjectFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}
