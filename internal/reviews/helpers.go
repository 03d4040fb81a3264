package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func findReview(ctx context.Context, repo Repository, id int) (Review, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return Review{}, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}
	return Review{}, ErrReviewNotFound
}
