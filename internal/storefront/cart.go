package storefront

import (
	"errors"
	"math/big"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"Tienda/pkg/kit"
)

const (
	TriggerHeader = "HX-Trigger"
	CartAddEvent  = "cart:add"

	maxFormBytes = 1 << 16
)

type cartAddForm struct {
	ProductID string `validate:"required"`
}

// addToCart acknowledges the click and tells the client to fire cart:add.
// Nothing is stored.
func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := parseCartForm(r); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad form", nil)
		return
	}

	form := cartAddForm{ProductID: strings.TrimSpace(r.PostForm.Get("product_id"))}
	if err := s.validator().Struct(form); err != nil {
		kit.WriteError(w, r, http.StatusUnprocessableEntity, "invalid form", map[string]any{
			"field":  "product_id",
			"reason": "required",
		})
		return
	}

	productID, ok := new(big.Int).SetString(form.ProductID, 10)
	if !ok {
		kit.WriteError(w, r, http.StatusUnprocessableEntity, "invalid form", map[string]any{
			"field":  "product_id",
			"reason": "must be an integer",
		})
		return
	}

	s.log().Debug("cart add", zap.Stringer("product_id", productID))
	if s.Metrics != nil {
		s.Metrics.CartSignals.Inc()
	}

	w.Header().Set(TriggerHeader, CartAddEvent)
	w.WriteHeader(http.StatusNoContent)
}

// parseCartForm accepts urlencoded and multipart bodies. Only body values
// land in r.PostForm, the query string is never consulted.
func parseCartForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}
