package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMaskHookFields(t *testing.T) {
	hook := NewMaskHook()
	entry := &logrus.Entry{
		Message: "authenticated with token=abc123; proceeding",
		Data: logrus.Fields{
			"api_key":       "sk-secret",
			"Authorization": "Bearer xyz",
			"provider":      "deepseek",
			"headers": map[string]string{
				"token": "abc",
				"host":  "api.deepseek.com",
			},
			"payload": map[string]interface{}{
				"password": "hunter2",
				"query":    "status token=def456 done",
			},
		},
	}

	if err := hook.Fire(entry); err != nil {
		t.Fatalf("Fire error: %v", err)
	}

	if entry.Message != "authenticated with token=******; proceeding" {
		t.Errorf("Message = %q, want token masked", entry.Message)
	}
	if entry.Data["api_key"] != "******" {
		t.Errorf("api_key = %v, want masked", entry.Data["api_key"])
	}
	if entry.Data["Authorization"] != "******" {
		t.Errorf("Authorization = %v, want masked (case-insensitive key match)", entry.Data["Authorization"])
	}
	if entry.Data["provider"] != "deepseek" {
		t.Errorf("provider = %v, want untouched", entry.Data["provider"])
	}

	headers := entry.Data["headers"].(map[string]string)
	if headers["token"] != "******" || headers["host"] != "api.deepseek.com" {
		t.Errorf("headers = %v, want only token masked", headers)
	}

	payload := entry.Data["payload"].(map[string]interface{})
	if payload["password"] != "******" {
		t.Errorf("payload password = %v, want masked", payload["password"])
	}
	if payload["query"] != "status token=****** done" {
		t.Errorf("payload query = %v, want token substring masked", payload["query"])
	}
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"token=abcdef", "token=******"},
		{"set-cookie: session=1; token=xyz; path=/", "set-cookie: session=1; token=******; path=/"},
		{"no secrets here", "no secrets here"},
	}

	for _, tt := range tests {
		if got := MaskString(tt.in); got != tt.want {
			t.Errorf("MaskString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
