package api

import (
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves registration, login and account administration.
type UserHandler struct {
	userService service.UserService
	errs        *ErrorWriter
}

func NewUserHandler(userService service.UserService, errs *ErrorWriter) *UserHandler {
	return &UserHandler{userService: userService, errs: errs}
}

// Register godoc
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body service.RegisterInput true "Registration details"
// @Success 201 {object} Response "User created successfully"
// @Failure 400 {object} Response "Validation error or email already registered"
// @Failure 429 {object} Response "Too many user requests"
// @Router /api/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Failed to create user")
		return
	}
	respondCreated(c, "User created successfully", user)
}

// Login godoc
// @Summary Check a user's credentials
// @Description Returns the account on success. No session or token is issued.
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body service.LoginInput true "Login credentials"
// @Success 200 {object} Response "Login successful"
// @Failure 401 {object} Response "Invalid email or password"
// @Failure 403 {object} Response "Account is suspended or inactive"
// @Failure 429 {object} Response "Too many user requests"
// @Router /api/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Login failed")
		return
	}
	respondOK(c, "Login successful", user)
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param role query string false "admin, member or trainer"
// @Param status query string false "active, inactive or suspended"
// @Success 200 {object} Response
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q service.UserQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	users, page, err := h.userService.List(c.Request.Context(), q)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch users")
		return
	}
	respondPage(c, users, page)
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "User not found"
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := pathID(c, service.ErrUserNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch user")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch user")
		return
	}
	respondOK(c, "", user)
}

// UpdateUser godoc
// @Summary Update a user's profile or status
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserInput true "Fields to change"
// @Success 200 {object} Response "User updated successfully"
// @Failure 400 {object} Response "Validation error"
// @Failure 404 {object} Response "User not found"
// @Router /api/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := pathID(c, service.ErrUserNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to update user")
		return
	}
	var req service.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.errs.Write(c, err, "Failed to update user")
		return
	}
	respondOK(c, "User updated successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response "User deleted successfully"
// @Failure 404 {object} Response "User not found"
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := pathID(c, service.ErrUserNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to delete user")
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err, "Failed to delete user")
		return
	}
	respondOK(c, "User deleted successfully", nil)
}
