package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/jewelry-storefront/internal/api"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
)

const (
	msgInvalidBody       = "Invalid request body"
	msgProductIDRequired = "productId is required"
	msgProductNotFound   = "Product not found"
	msgNotInCart         = "Product not found in cart"
	msgQuantityTooLarge  = "Quantity is too large"
	msgPurchaseCompleted = "Purchase completed successfully!"
	msgContactSubmitted  = "Contact form submitted successfully!"
	msgProfileUpdated    = "Profile updated successfully"
	msgContactInfo       = "Contact us at contact@example.com"
)

func fail(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, api.Envelope{Success: false, Message: message})
}

func ok() api.Envelope {
	return api.Envelope{Success: true}
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.repos.Products.ListProducts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error retrieving products", err)
		return
	}

	resp := api.ProductsResponse{
		Envelope: ok(),
		Products: make([]api.Product, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, api.FromProduct(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.repos.Carts.GetCart(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error retrieving cart", err)
		return
	}

	resp := api.CartResponse{
		Envelope:   ok(),
		Cart:       make([]api.CartLine, 0, len(cart.Items)),
		TotalItems: cart.ItemCount(),
	}
	for _, item := range cart.Items {
		resp.Cart = append(resp.Cart, api.CartLine{
			ProductID: api.ID(item.Product.ID),
			Quantity:  item.Quantity,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// addToCart increments an existing line. A missing quantity counts as one.
func (s *Server) addToCart(c *gin.Context) {
	var req api.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	if req.ProductID == "" {
		fail(c, http.StatusBadRequest, msgProductIDRequired, nil)
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		fail(c, http.StatusBadRequest, "Quantity must be positive", nil)
		return
	}
	if quantity > domain.MaxQuantity {
		fail(c, http.StatusBadRequest, msgQuantityTooLarge, nil)
		return
	}

	total, err := s.repos.Carts.AddItem(c.Request.Context(), ownerID(c), string(req.ProductID), quantity)
	if errors.Is(err, port.ErrNotFound) {
		fail(c, http.StatusNotFound, msgProductNotFound, err)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error adding item to cart", err)
		return
	}

	c.JSON(http.StatusOK, api.CartMutationResponse{
		Envelope:  api.Envelope{Success: true, Message: fmt.Sprintf("Added %d item(s) to cart", quantity)},
		ProductID: req.ProductID,
		Quantity:  total,
	})
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req api.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	if req.ProductID == "" {
		fail(c, http.StatusBadRequest, msgProductIDRequired, nil)
		return
	}

	// stored quantities are positive, removal has its own endpoint
	if req.Quantity < 1 {
		fail(c, http.StatusBadRequest, "Quantity must be at least 1", nil)
		return
	}
	if req.Quantity > domain.MaxQuantity {
		fail(c, http.StatusBadRequest, msgQuantityTooLarge, nil)
		return
	}

	err := s.repos.Carts.UpdateItem(c.Request.Context(), ownerID(c), string(req.ProductID), req.Quantity)
	if errors.Is(err, port.ErrNotFound) {
		fail(c, http.StatusNotFound, msgNotInCart, err)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error updating cart item", err)
		return
	}

	c.JSON(http.StatusOK, api.CartMutationResponse{
		Envelope:  api.Envelope{Success: true, Message: fmt.Sprintf("Updated quantity to %d", req.Quantity)},
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}

func (s *Server) removeFromCart(c *gin.Context) {
	var req api.CartRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	if req.ProductID == "" {
		fail(c, http.StatusBadRequest, msgProductIDRequired, nil)
		return
	}

	removed, err := s.repos.Carts.DeleteItem(c.Request.Context(), ownerID(c), string(req.ProductID))
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error removing item from cart", err)
		return
	}
	if !removed {
		fail(c, http.StatusNotFound, msgNotInCart, nil)
		return
	}

	c.JSON(http.StatusOK, api.CartMutationResponse{
		Envelope:  api.Envelope{Success: true, Message: "Item removed from cart"},
		ProductID: req.ProductID,
	})
}

// buy records the submitted lines as a completed order and empties the
// session cart. The order total is recomputed from the line totals.
func (s *Server) buy(c *gin.Context) {
	var req api.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	purchase, err := req.ToDomain()
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid purchase request", err)
		return
	}

	if len(purchase.Items) == 0 {
		fail(c, http.StatusBadRequest, "No items to purchase", nil)
		return
	}

	for _, item := range purchase.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			fail(c, http.StatusBadRequest, "Invalid purchase request", fmt.Errorf("item[%s] quantity[%d] is not valid", item.ProductID, item.Quantity))
			return
		}
	}

	order, err := s.repos.Orders.PlaceOrder(c.Request.Context(), ownerID(c), domain.Order{
		Items:  purchase.Items,
		Status: domain.OrderStatusCompleted,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error processing purchase", err)
		return
	}

	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = s.now().UTC().Format(api.TimestampLayout)
	}

	c.JSON(http.StatusOK, api.PurchaseResponse{
		Envelope:       api.Envelope{Success: true, Message: msgPurchaseCompleted},
		OrderID:        order.OrderID,
		ItemsPurchased: len(purchase.Items),
		Timestamp:      timestamp,
	})
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.repos.Orders.ListOrders(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error retrieving orders", err)
		return
	}

	resp := api.OrdersResponse{
		Envelope: ok(),
		Orders:   make([]api.Order, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, api.FromOrder(o))
	}

	c.JSON(http.StatusOK, resp)
}

// getProfile answers with an empty profile for sessions that never saved one.
func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.repos.Profiles.GetProfile(c.Request.Context(), ownerID(c))
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		fail(c, http.StatusInternalServerError, "Error retrieving profile", err)
		return
	}

	c.JSON(http.StatusOK, api.ProfileResponse{
		Envelope: ok(),
		Profile:  api.FromProfile(profile),
	})
}

func (s *Server) updateProfile(c *gin.Context) {
	var req api.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	profile := req.ToDomain()
	if err := profile.Validate(); err != nil {
		fail(c, http.StatusBadRequest, "Invalid profile: "+err.Error(), err)
		return
	}

	saved, err := s.repos.Profiles.SaveProfile(c.Request.Context(), ownerID(c), profile)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error updating profile", err)
		return
	}

	c.JSON(http.StatusOK, api.ProfileResponse{
		Envelope: api.Envelope{Success: true, Message: msgProfileUpdated},
		Profile:  api.FromProfile(saved),
	})
}

func (s *Server) contactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": msgContactInfo})
}

func (s *Server) submitContact(c *gin.Context) {
	var req api.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	msg := req.ToDomain()
	if err := msg.Validate(); err != nil {
		fail(c, http.StatusBadRequest, "Invalid contact message: "+err.Error(), err)
		return
	}

	if err := s.repos.Contacts.SaveMessage(c.Request.Context(), msg); err != nil {
		fail(c, http.StatusInternalServerError, "Error sending message", err)
		return
	}

	c.JSON(http.StatusOK, api.ContactResponse{
		Envelope: api.Envelope{Success: true, Message: msgContactSubmitted},
		Data:     req,
	})
}
