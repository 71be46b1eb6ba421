package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-records/internal/models"
	"github.com/harentsoaR/clinic-records/internal/services"
	"github.com/harentsoaR/clinic-records/internal/utils"
)

// CreateUser creates an employee account.
func (h *Handler) CreateUser(c *gin.Context) {
	var req services.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, invalidBody(err), nil)
		return
	}

	user, err := h.Records.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.Accepted(c, gin.H{"user": user})
}

// CreatePatient creates a patient account.
func (h *Handler) CreatePatient(c *gin.Context) {
	var req services.CreatePatientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, invalidBody(err), nil)
		return
	}

	user, err := h.Records.CreatePatient(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.Accepted(c, gin.H{"user": user})
}

// ListUsers reads the listing filters from a JSON body. An empty body lists
// everything.
func (h *Handler) ListUsers(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindJSON(&q); err != nil && !errors.Is(err, io.EOF) {
		utils.Fail(c, invalidBody(err), nil)
		return
	}
	h.listUsers(c, q)
}

// SearchUsers is ListUsers for query strings, e.g.
// /api/users?searchKey=john&activeStatus=true&sortField=fullName&sortOrder=asc&limit=10
func (h *Handler) SearchUsers(c *gin.Context) {
	var params struct {
		Skip      int64  `form:"skip"`
		Limit     int64  `form:"limit"`
		UserType  string `form:"userType"`
		SearchKey string `form:"searchKey"`
		SortField string `form:"sortField"`
		SortOrder string `form:"sortOrder"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.Fail(c, invalidBody(err), nil)
		return
	}

	q := models.ListQuery{
		Skip:      params.Skip,
		Limit:     params.Limit,
		UserType:  params.UserType,
		SearchKey: params.SearchKey,
	}
	if raw, ok := c.GetQuery("activeStatus"); ok {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.Fail(c, invalidBody(err), nil)
			return
		}
		q.ActiveStatus = &active
	}
	if params.SortField != "" {
		order, err := models.ParseSortOrder(params.SortOrder)
		if err != nil {
			utils.Fail(c, invalidBody(err), nil)
			return
		}
		q.SortBy = &models.SortBy{Field: params.SortField, Order: order}
	}
	h.listUsers(c, q)
}

func (h *Handler) listUsers(c *gin.Context, q models.ListQuery) {
	result, err := h.Records.GetUsers(c.Request.Context(), q)
	if err != nil {
		var data any
		if result != nil {
			data = result
		}
		utils.Fail(c, err, data)
		return
	}
	utils.OK(c, result)
}

func (h *Handler) GetUserDetails(c *gin.Context) {
	user, err := h.Records.GetUserDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.OK(c, gin.H{"user": user})
}

// UpdateUserDetails updates name, mobile and photo; empty fields are left alone.
func (h *Handler) UpdateUserDetails(c *gin.Context) {
	var req services.UpdateDetailsInput
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.Fail(c, invalidBody(err), nil)
		return
	}

	user, err := h.Records.UpdateUserDetails(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.Accepted(c, gin.H{"user": user})
}

// UpdatePatient writes the request body as-is onto the record.
func (h *Handler) UpdatePatient(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		utils.Fail(c, invalidBody(err), nil)
		return
	}

	user, err := h.Records.UpdatePatient(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.Accepted(c, gin.H{"user": user})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req services.UpdateStatusInput
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.Fail(c, invalidBody(err), nil)
		return
	}

	user, err := h.Records.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.Accepted(c, gin.H{"user": user})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	user, err := h.Records.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err, nil)
		return
	}
	utils.Accepted(c, gin.H{"user": user})
}

func invalidBody(err error) error {
	return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
}
