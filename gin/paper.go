package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/bobinette/paperchain/errors"
	"github.com/bobinette/paperchain/registry"
)

type PaperHandler struct {
	Registry *registry.Service

	metrics *metrics
}

func (h *PaperHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/paperchain/papers", JSONFormatter(h.Register))
	router.GET("/paperchain/papers/:hash", JSONFormatter(h.Get))
	router.GET("/paperchain/papers/:hash/id", JSONFormatter(h.ID))
	router.GET("/paperchain/papers/:hash/ownership", JSONFormatter(h.Ownership))
	router.PUT("/paperchain/papers/:hash", JSONFormatter(h.Update))
	router.DELETE("/paperchain/papers/:hash", JSONFormatter(h.Deactivate))
}

type registerRequest struct {
	Hash        string `json:"hash"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FundingGoal uint64 `json:"fundingGoal"`
}

func (h *PaperHandler) Register(c *gin.Context) (interface{}, error) {
	from, err := caller(c)
	if err != nil {
		return nil, err
	}
	at, err := height(c)
	if err != nil {
		return nil, err
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.New("invalid body", errors.WithCode(400), errors.WithCause(err))
	}

	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}

	id, err := h.Registry.Register(from, at, hash, req.Title, req.Description, req.FundingGoal)
	if err != nil {
		return nil, err
	}

	if h.metrics != nil {
		h.metrics.registrations.Inc()
	}

	return map[string]interface{}{
		"id":   id,
		"hash": hash,
	}, nil
}

func (h *PaperHandler) Get(c *gin.Context) (interface{}, error) {
	hash, err := hashParam(c)
	if err != nil {
		return nil, err
	}

	paper, err := h.Registry.Get(hash)
	if err != nil {
		return nil, err
	} else if paper == nil {
		return nil, errors.New("no paper for hash", errors.PaperNotFound())
	}

	return paper, nil
}

func (h *PaperHandler) ID(c *gin.Context) (interface{}, error) {
	hash, err := hashParam(c)
	if err != nil {
		return nil, err
	}

	id, ok, err := h.Registry.ID(hash)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.New("no paper for hash", errors.PaperNotFound())
	}

	return map[string]interface{}{
		"id": id,
	}, nil
}

func (h *PaperHandler) Ownership(c *gin.Context) (interface{}, error) {
	from, err := caller(c)
	if err != nil {
		return nil, err
	}
	hash, err := hashParam(c)
	if err != nil {
		return nil, err
	}

	owned, err := h.Registry.VerifyOwnership(from, hash)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"owner": owned,
	}, nil
}

type updateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *PaperHandler) Update(c *gin.Context) (interface{}, error) {
	from, err := caller(c)
	if err != nil {
		return nil, err
	}
	hash, err := hashParam(c)
	if err != nil {
		return nil, err
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.New("invalid body", errors.WithCode(400), errors.WithCause(err))
	}

	if err := h.Registry.UpdateMetadata(from, hash, req.Title, req.Description); err != nil {
		return nil, err
	}

	paper, err := h.Registry.Get(hash)
	if err != nil {
		return nil, err
	}
	return paper, nil
}

func (h *PaperHandler) Deactivate(c *gin.Context) (interface{}, error) {
	from, err := caller(c)
	if err != nil {
		return nil, err
	}
	hash, err := hashParam(c)
	if err != nil {
		return nil, err
	}

	if err := h.Registry.Deactivate(from, hash); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"hash": hash,
	}, nil
}
