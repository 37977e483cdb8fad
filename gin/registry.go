package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/bobinette/paperchain"
	"github.com/bobinette/paperchain/errors"
	"github.com/bobinette/paperchain/registry"
)

type RegistryHandler struct {
	Registry *registry.Service
	Events   EventLister
}

func (h *RegistryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/paperchain/registry/last-id", JSONFormatter(h.LastID))
	router.GET("/paperchain/registry/fee", JSONFormatter(h.Fee))
	router.PUT("/paperchain/registry/fee", JSONFormatter(h.SetFee))
	router.PUT("/paperchain/registry/authority", JSONFormatter(h.SetAuthority))
	router.GET("/paperchain/events", JSONFormatter(h.List))
}

func (h *RegistryHandler) LastID(c *gin.Context) (interface{}, error) {
	id, err := h.Registry.LastID()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"lastId": id,
	}, nil
}

func (h *RegistryHandler) Fee(c *gin.Context) (interface{}, error) {
	fee, err := h.Registry.RegistrationFee()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"fee": fee,
	}, nil
}

type setFeeRequest struct {
	Fee uint64 `json:"fee"`
}

func (h *RegistryHandler) SetFee(c *gin.Context) (interface{}, error) {
	var req setFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.New("invalid body", errors.WithCode(400), errors.WithCause(err))
	}

	if err := h.Registry.SetRegistrationFee(req.Fee); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"fee": req.Fee,
	}, nil
}

type setAuthorityRequest struct {
	Authority string `json:"authority"`
}

func (h *RegistryHandler) SetAuthority(c *gin.Context) (interface{}, error) {
	var req setAuthorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.New("invalid body", errors.WithCode(400), errors.WithCause(err))
	}

	if err := h.Registry.SetAuthority(paperchain.Principal(req.Authority)); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"authority": req.Authority,
	}, nil
}

func (h *RegistryHandler) List(c *gin.Context) (interface{}, error) {
	if h.Events == nil {
		return []paperchain.Event{}, nil
	}

	events, err := h.Events.List()
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []paperchain.Event{}
	}

	return events, nil
}
