package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/korbahq/korba-app/store"
	"github.com/korbahq/korba-app/utils"
)

// Payment methods offered at checkout. Only cash on delivery does anything;
// the others show a note asking for a transaction reference that is never
// verified.
const (
	PaymentCOD       = "cod"
	PaymentJazzCash  = "jazzcash"
	PaymentEasyPaisa = "easypaisa"
	PaymentBank      = "bank"
)

type CheckoutController struct {
	Carts *store.CartManager
}

func NewCheckoutController(carts *store.CartManager) *CheckoutController {
	return &CheckoutController{Carts: carts}
}

type checkoutRequest struct {
	CartID        string `json:"cart_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
}

// Submit -> Filling to Submitted. Validates the required delivery fields,
// empties the cart, and answers with a confirmation for the chosen payment
// method. No payment gateway is called and no order record is written.
func (cc *CheckoutController) Submit(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	method := req.PaymentMethod
	if method == "" {
		method = PaymentCOD
	}
	switch method {
	case PaymentCOD, PaymentJazzCash, PaymentEasyPaisa, PaymentBank:
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown payment method %q", method))
		return
	}

	cart := cc.Carts.Get(req.CartID)
	if cart == nil {
		utils.RespondError(c, http.StatusNotFound, errCartNotFound)
		return
	}
	lines, _, total := cart.Snapshot()
	if len(lines) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}
	cart.Clear()

	utils.InfoLogger.Printf("Checkout submitted for cart %s (%s, %s)", req.CartID, utils.FormatRupees(total), method)

	utils.RespondJSON(c, http.StatusOK, "Order confirmed", gin.H{
		"state":          "submitted",
		"payment_method": method,
		"total":          total,
		"message":        "Thank you for choosing Korba. Your feast is being prepared and will be at your doorstep in Noshahra Cantt shortly.",
		"payment_note":   paymentNote(method),
	})
}

func paymentNote(method string) string {
	switch method {
	case PaymentJazzCash:
		return "Please send the total amount to our JazzCash account: 0300-1234567. Our team will verify your JazzCash payment shortly."
	case PaymentEasyPaisa:
		return "Please send the total amount to our EasyPaisa account: 0300-1234567. Our team will verify your EasyPaisa payment shortly."
	case PaymentBank:
		return "Please transfer the total amount to our bank account and share the transaction reference. Our team will verify your Bank Transfer payment shortly."
	default:
		return ""
	}
}
