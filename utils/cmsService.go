package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"studybud/config"

	"github.com/go-resty/resty/v2"
)

// StudyTip is an editorial content entry served from the headless CMS.
type StudyTip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Topic string `json:"topic"`
}

// FetchStudyTips fetches study tips from the CMS, optionally filtered by topic.
func FetchStudyTips(topic string) ([]StudyTip, error) {
	client := resty.New()

	req := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.CMSApiKey)
	if topic != "" {
		req.SetQueryParam("filters[topic][$eq]", topic)
	}

	resp, err := req.Get(config.AppConfig.CMSApiURL + "/study-tips")
	if err != nil {
		log.Printf("Failed to fetch study tips: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Non-200 status from CMS: %d, %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("CMS request failed with status %d", resp.StatusCode())
	}

	var body struct {
		Data []struct {
			Attributes StudyTip `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Printf("Failed to parse CMS response: %v", err)
		return nil, fmt.Errorf("invalid CMS response")
	}

	tips := make([]StudyTip, len(body.Data))
	for i, entry := range body.Data {
		tips[i] = entry.Attributes
	}

	return tips, nil
}
