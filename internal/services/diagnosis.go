package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/youssefrramdan/care-insight-api/pkg/logger"
)

// Default endpoints of the hosted diagnosis models; overridable via config.
const (
	DefaultBreastModelURL = "https://breast-model-api.onrender.com/predict"
	DefaultBrainModelURL  = "https://brain-cancer-api-efdfd2c65bbe.herokuapp.com/predict"
	DefaultSkinModelURL   = "https://skin-cancer-api-fc3b6db8b2c2.herokuapp.com/api/predict"
	DefaultGeneModelURL   = "https://gene-classify-api-557a7e2b2275.herokuapp.com/predict"
)

var diagnosisClient = &http.Client{Timeout: 60 * time.Second}

// GeneClassifyRequest is the payload of the gene-variation classifier.
type GeneClassifyRequest struct {
	Gene      string `json:"gene"`
	Variation string `json:"variation"`
	Text      string `json:"text"`
}

func postJSON(url string, payload interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := diagnosisClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		logger.Error().Err(err).Str("url", url).Msg("Diagnosis model request failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("diagnosis model returned status %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

// PredictFromImage asks an image-based model for a prediction. imageKey is
// the JSON field name the model expects for the image URL ("image_url" for
// the breast/brain models, "url" for the skin model).
func PredictFromImage(modelURL, imageKey, imageURL string) (map[string]interface{}, error) {
	return postJSON(modelURL, map[string]string{imageKey: imageURL})
}

// ClassifyGene asks the gene-variation classifier for a prediction.
func ClassifyGene(modelURL string, req GeneClassifyRequest) (map[string]interface{}, error) {
	return postJSON(modelURL, req)
}
