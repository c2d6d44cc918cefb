// Package handlers exposes the cipher core over HTTP.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/aes128"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/cipher"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/keyutil"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/logging"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/models"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/padding"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "AES-128 cipher API is running",
		"modes":   []string{"ecb", "cfb"},
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	var req models.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.EncryptResponse{
			Success: false,
			Message: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	key, err := keyutil.NormalizeKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.EncryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	mode, err := cipher.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.EncryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	var iv []byte
	if req.IV != "" {
		if iv, err = keyutil.NormalizeIV(req.IV); err != nil {
			c.JSON(http.StatusBadRequest, models.EncryptResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
	}

	cc, err := cipher.NewCipher(key, mode, nil)
	if err != nil {
		c.JSON(statusFor(err), models.EncryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ivUsed, ciphertext, err := cc.Encrypt([]byte(req.Text), iv)
	if err != nil {
		logging.ErrorLog.Printf("encrypt (%s): %v", mode, err)
		c.JSON(statusFor(err), models.EncryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	resp := models.EncryptResponse{
		Success:   true,
		CipherHex: keyutil.EncodeHex(ciphertext),
	}
	if ivUsed != nil {
		resp.IVHex = keyutil.EncodeHex(ivUsed)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	var req models.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	key, err := keyutil.NormalizeKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	mode, err := cipher.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ciphertext, err := keyutil.DecodeHex(req.CipherHex)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	var iv []byte
	if req.IVHex != "" {
		if iv, err = keyutil.DecodeHex(req.IVHex); err != nil {
			c.JSON(http.StatusBadRequest, models.DecryptResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
	}

	cc, err := cipher.NewCipher(key, mode, nil)
	if err != nil {
		c.JSON(statusFor(err), models.DecryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	plaintext, err := cc.Decrypt(ciphertext, iv)
	if err != nil {
		logging.ErrorLog.Printf("decrypt (%s): %v", mode, err)
		c.JSON(statusFor(err), models.DecryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.DecryptResponse{
		Success: true,
		Text:    string(plaintext),
	})
}

// statusFor maps caller-input failures to 400; anything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, aes128.ErrInvalidKeyLength),
		errors.Is(err, cipher.ErrUnsupportedMode),
		errors.Is(err, cipher.ErrInvalidIVLength),
		errors.Is(err, cipher.ErrInvalidCiphertextLength),
		errors.Is(err, cipher.ErrMissingIV),
		errors.Is(err, padding.ErrInvalidPadding):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
