package api

import (
	"encoding/json"
	"net/http"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

type createCommentRequest struct {
	PostID    int64  `json:"post_id"`
	UserID    int64  `json:"user_id"`
	Content   string `json:"content"`
	ReplyToID *int64 `json:"reply_to_id"`
}

func (api *Api) CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PostID == 0 {
		writeError(w, http.StatusBadRequest, "Missing Param post_id")
		return
	}
	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "Missing Param user_id")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Missing Param content")
		return
	}

	comment := &models.Comment{
		PostID:    req.PostID,
		UserID:    req.UserID,
		Content:   req.Content,
		ReplyToID: req.ReplyToID,
	}
	if err := api.Store.CreateComment(comment); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (api *Api) GetPostCommentsHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	comments, err := api.Store.GetCommentsByPostID(postID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (api *Api) UpdateCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Missing Param content")
		return
	}

	comment, err := api.Store.UpdateComment(id, req.Content)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (api *Api) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	comment, err := api.Store.DeleteComment(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if comment == nil {
		writeJSON(w, http.StatusOK, map[string]string{})
		return
	}
	writeJSON(w, http.StatusOK, comment)
}
