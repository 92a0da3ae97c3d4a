package msg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var messages map[string]string

// init loads the message catalog. The path defaults to configs/messages.yml
// and can be overridden with MESSAGES_FILE_PATH.
func init() {
	path, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		path = "configs/messages.yml"
	}
	Init(path)
}

func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	if messages == nil {
		messages = make(map[string]string)
	}
	flattenMessages("", viper.AllSettings(), messages)
}

// flattenMessages walks the YAML tree and flattens it into dotted keys.
func flattenMessages(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			flattenMessages(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage resolves a catalog message and substitutes {0}, {1}, ... with
// the given arguments.
func GetMessage(key string, args ...any) string {
	message, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, formatArg(arg))
	}

	return message
}

// formatArg renders structs and maps as JSON; everything else through fmt.
func formatArg(arg any) string {
	switch arg.(type) {
	case nil:
		return ""
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", arg)
	}

	if jsonBytes, err := json.Marshal(arg); err == nil {
		return string(jsonBytes)
	}
	return fmt.Sprintf("%v", arg)
}
