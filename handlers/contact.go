package handlers

import (
	"log"
	"net/http"

	"portfolio/mailer"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact validates a four-field submission and relays it to the mail
// transport. The validation contract is a single rejection message; it does
// not report which field was missing.
func (h *Handler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	err := h.mail.Send(mailer.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Printf("Contact send error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}
