package mqtt

import "fmt"

func TopicPetTelemetry(prefix string) string {
	return fmt.Sprintf("%s/pet/+/telemetry", prefix)
}

func topicTelemetry(prefix, petID string) string {
	return fmt.Sprintf("%s/pet/%s/telemetry", prefix, petID)
}

func TopicDiary(prefix, petID string) string {
	return fmt.Sprintf("%s/pet/%s/diary", prefix, petID)
}

// TopicOnline carries the retained service presence flag ("1" or "0").
func TopicOnline(prefix, clientID string) string {
	return fmt.Sprintf("%s/service/%s/online", prefix, clientID)
}
