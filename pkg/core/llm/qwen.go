package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"bigpicture_agent/pkg/core/utils"
)

// QwenProvider calls the native DashScope text-generation API.
type QwenProvider struct {
	APIKey string // falls back to DASHSCOPE_API_KEY, then QWEN_API_KEY
	Model  string // falls back to "qwen-max"
}

var _ Provider = (*QwenProvider)(nil)

type qwenRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []Message `json:"messages"`
	} `json:"input"`
	Parameters struct {
		ResultFormat string `json:"result_format"`
	} `json:"parameters"`
}

type qwenResponse struct {
	Output struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		// Some DashScope endpoints return text directly.
		Text string `json:"text"`
	} `json:"output"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (p *QwenProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := p.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("DASHSCOPE_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("QWEN_API_KEY")
	}
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", utils.CreateConfigurationError("narrative service not configured: DASHSCOPE_API_KEY or QWEN_API_KEY is required")
	}

	model := p.Model
	if model == "" {
		model = "qwen-max"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	var reqBody qwenRequest
	reqBody.Model = model
	reqBody.Input.Messages = []Message{
		{Content: systemPrompt, Role: "system"},
		{Content: prompt, Role: "user"},
	}
	reqBody.Parameters.ResultFormat = "message"

	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("QWEN_MARSHAL_ERROR: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation", bytes.NewBuffer(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("QWEN_REQ_CREATE_ERROR: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: generateTimeout}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("QWEN_API_CALL_ERROR: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("QWEN_READ_BODY_ERROR: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("QWEN_API_ERROR: status=%d body=%s", res.StatusCode, string(body))
	}

	var response qwenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("QWEN_UNMARSHAL_ERROR: %v", err)
	}
	if response.Code != "" {
		return "", fmt.Errorf("QWEN_API_ERROR: %s - %s", response.Code, response.Message)
	}

	if len(response.Output.Choices) > 0 {
		return response.Output.Choices[0].Message.Content, nil
	}
	if response.Output.Text != "" {
		return response.Output.Text, nil
	}
	return "", fmt.Errorf("QWEN_NO_CHOICES: %s", string(body))
}

func (p *QwenProvider) AdaptInstructions(raw string) string {
	return raw
}
