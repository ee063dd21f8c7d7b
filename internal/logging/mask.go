package logging

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

const maskedValue = "******"

// sensitiveKeys are field names whose values are masked in log entries.
var sensitiveKeys = []string{
	"credentials",
	"authorization",
	"token",
	"password",
	"access_token",
	"api_key",
}

var tokenPattern = regexp.MustCompile(`token=([^;\s]+)`)

// MaskHook redacts credential-ish values from log entries before they
// are written: sensitive field values and token=... substrings in
// messages and string fields.
type MaskHook struct{}

func NewMaskHook() *MaskHook {
	return &MaskHook{}
}

func (h *MaskHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *MaskHook) Fire(entry *logrus.Entry) error {
	entry.Message = MaskString(entry.Message)

	for key, value := range entry.Data {
		if isSensitiveKey(key) {
			entry.Data[key] = maskedValue
			continue
		}
		switch v := value.(type) {
		case string:
			entry.Data[key] = MaskString(v)
		case map[string]string:
			entry.Data[key] = maskStringMap(v)
		case map[string]interface{}:
			entry.Data[key] = maskAnyMap(v)
		}
	}

	return nil
}

// MaskString redacts token=... substrings in a message.
func MaskString(s string) string {
	return tokenPattern.ReplaceAllString(s, "token="+maskedValue)
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if lower == sensitive {
			return true
		}
	}
	return false
}

func maskStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if isSensitiveKey(k) {
			out[k] = maskedValue
		} else {
			out[k] = MaskString(v)
		}
	}
	return out
}

func maskAnyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if isSensitiveKey(k) {
			out[k] = maskedValue
			continue
		}
		switch vv := v.(type) {
		case string:
			out[k] = MaskString(vv)
		case map[string]interface{}:
			out[k] = maskAnyMap(vv)
		default:
			out[k] = vv
		}
	}
	return out
}
