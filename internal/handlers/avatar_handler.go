package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaBeautyTech/salon-manager/internal/httperr"
	"github.com/NovaBeautyTech/salon-manager/internal/imaging"
	"github.com/NovaBeautyTech/salon-manager/internal/models"
	"github.com/NovaBeautyTech/salon-manager/internal/storage"
)

const maxAvatarUpload = 5 << 20 // 5 MiB

// AvatarHandler accepts a multipart image upload, re-encodes it to a
// bounded webp and stores it in the media bucket. The resulting URL is
// written onto the client or staff record.
type AvatarHandler struct {
	db    *gorm.DB
	store storage.MediaStore
}

func NewAvatarHandler(db *gorm.DB, store storage.MediaStore) *AvatarHandler {
	return &AvatarHandler{db: db, store: store}
}

func (h *AvatarHandler) UploadClientAvatar(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	clientID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.
		Where("salon_id = ?", salonID).
		First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}

	url, ok := h.processUpload(c, fmt.Sprintf("avatars/clients/%d/%d", salonID, clientID))
	if !ok {
		return
	}

	client.AvatarURL = url
	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "update_failed", "could not save the avatar url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

func (h *AvatarHandler) UploadStaffAvatar(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}
	staffID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var staff models.StaffMember
	if err := h.db.
		Where("salon_id = ?", salonID).
		First(&staff, staffID).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "staff member not found")
		return
	}

	url, ok := h.processUpload(c, fmt.Sprintf("avatars/staff/%d/%d", salonID, staffID))
	if !ok {
		return
	}

	staff.AvatarURL = url
	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "update_failed", "could not save the avatar url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// processUpload reads the "avatar" form file, re-encodes it and stores
// the result. It writes the error response itself on failure.
func (h *AvatarHandler) processUpload(c *gin.Context, keyPrefix string) (string, bool) {
	if h.store == nil {
		httperr.Unprocessable(c, "storage_disabled", "media storage is not configured")
		return "", false
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "multipart field 'avatar' is required")
		return "", false
	}
	if fileHeader.Size > maxAvatarUpload {
		httperr.BadRequest(c, "invalid_request", "avatar exceeds the 5 MiB limit")
		return "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "could not read the upload")
		return "", false
	}
	defer f.Close()

	encoded, err := imaging.EncodeAvatar(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "avatar must be a jpeg, png or gif image")
		return "", false
	}

	key := fmt.Sprintf("%s/%d.webp", keyPrefix, time.Now().UnixNano())
	url, err := h.store.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "could not store the avatar")
		return "", false
	}

	return url, true
}
