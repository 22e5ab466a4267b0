package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/twprice/internal/domain/dto"
	"github.com/guttosm/twprice/internal/middleware"
	"github.com/guttosm/twprice/internal/service"
)

// Handler provides HTTP handlers for the price endpoints.
//
// Responsibilities:
//   - Decode and validate request bodies
//   - Delegate resolution to the service layer
//   - Translate results into response DTOs
type Handler struct {
	resolver service.PriceResolver
	korea    service.KoreaQuoteService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - resolver (service.PriceResolver): resolves Taiwan ticker codes.
//   - korea (service.KoreaQuoteService): resolves KRX symbols; may be nil to
//     disable POST /api/kr/prices.
func NewHandler(resolver service.PriceResolver, korea service.KoreaQuoteService) *Handler {
	return &Handler{resolver: resolver, korea: korea}
}

// GetPrices handles POST /api/prices requests.
//
// Body:
//   - codes ([]string): ticker codes, duplicates allowed.
//
// Responses:
//   - 200 OK: map of every unique code to its price (2 decimals) or null.
//     A missing or empty codes array yields {}.
//   - 500 Internal Server Error: body is not valid JSON.
//
// GetPrices godoc
// @Summary      Latest prices by ticker code
// @Description  Resolves each unique code via primary listing, alternate listing, then latest daily close
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PricesRequest   true  "Ticker codes"
// @Success      200      {object}  dto.PricesResponse  "Code to price or null"
// @Failure      500      {object}  dto.ErrorResponse   "Malformed request"
// @Router       /api/prices [post]
func (h *Handler) GetPrices(c *gin.Context) {
	var req dto.PricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "invalid request body", err)
		return
	}

	if len(req.Codes) == 0 {
		c.JSON(http.StatusOK, dto.PricesResponse{})
		return
	}

	results := h.resolver.Resolve(c.Request.Context(), req.Codes)
	c.JSON(http.StatusOK, dto.NewPricesResponse(results))
}

// GetKoreaPrices handles POST /api/kr/prices requests.
//
// Responses:
//   - 200 OK: map of symbol to {ok, price} or {ok:false, error}.
//   - 400 Bad Request: symbols missing or empty.
//   - 500 Internal Server Error: body is not valid JSON.
//
// GetKoreaPrices godoc
// @Summary      Latest KRX prices
// @Description  Scrapes the current price of each symbol from Naver Finance, one at a time
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        request  body      dto.KoreaPricesRequest   true  "KRX symbols"
// @Success      200      {object}  dto.KoreaPricesResponse  "Symbol to quote"
// @Failure      400      {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse        "Malformed request"
// @Router       /api/kr/prices [post]
func (h *Handler) GetKoreaPrices(c *gin.Context) {
	if h.korea == nil {
		middleware.AbortWithError(c, http.StatusNotFound, "korean quotes are disabled", nil)
		return
	}

	var req dto.KoreaPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "invalid request body", err)
		return
	}
	if len(req.Symbols) == 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbols must be a non-empty array", errors.New("empty symbols"))
		return
	}

	c.JSON(http.StatusOK, dto.KoreaPricesResponse(h.korea.Quote(c.Request.Context(), req.Symbols)))
}
