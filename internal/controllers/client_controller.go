package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// CreateClientRequest is the body of POST /api/v1/protected/clients
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required" example:"inventory-sync"`
	Domain      string `json:"domain" example:"https://inventory.example.com"`
	Scopes      string `json:"scopes" example:"read write"`
	GrantTypes  string `json:"grant_types" example:"client_credentials"`
	RedirectURI string `json:"redirect_uri"`
}

// CreateClientResponse carries the only copy of the plain client secret
type CreateClientResponse struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Name         string `json:"name"`
	Scopes       string `json:"scopes"`
	GrantTypes   string `json:"grant_types"`
	RedirectURI  string `json:"redirect_uri"`
}

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client details"
// @Success 201 {object} CreateClientResponse "Client created with client_id and client_secret"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Client creation failed"
// @Security BearerAuth
// @Router /api/v1/protected/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
		return
	}
	if req.GrantTypes == "" {
		req.GrantTypes = "client_credentials"
	}

	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Client secret hashing failed")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("secret_generation_failed"))
		return
	}

	client := &models.OAuthClient{
		ID:          uuid.New().String(),
		Secret:      string(hashedSecret),
		Name:        req.Name,
		Domain:      req.Domain,
		Scopes:      req.Scopes,
		GrantTypes:  req.GrantTypes,
		RedirectURI: req.RedirectURI,
		UserID:      c.GetUint(middleware.ContextUserID),
	}

	if err := cc.clientService.CreateClient(c.Request.Context(), client); err != nil {
		log.WithError(err).Error("Client creation failed")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("client_creation_failed"))
		return
	}

	log.WithFields(logrus.Fields{"client_id": client.ID, "user_id": client.UserID}).Info("OAuth client created")
	c.JSON(http.StatusCreated, CreateClientResponse{
		ClientID:     client.ID,
		ClientSecret: secret,
		Name:         client.Name,
		Scopes:       client.Scopes,
		GrantTypes:   client.GrantTypes,
		RedirectURI:  client.RedirectURI,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} models.OAuthClient "List of clients"
// @Failure 500 {object} models.ErrorResponse "Failed to retrieve clients"
// @Security BearerAuth
// @Router /api/v1/protected/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		log.WithError(err).Error("Listing clients failed")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("failed_to_retrieve_clients"))
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user and revoke its tokens
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /api/v1/protected/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetUint(middleware.ContextUserID))
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("client_not_found"))
		return
	}
	if err != nil {
		log.WithError(err).Error("Client deletion failed")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("client_deletion_failed"))
		return
	}

	c.Status(http.StatusNoContent)
}
