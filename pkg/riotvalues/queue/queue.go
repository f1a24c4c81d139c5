package queuevalues

// Queue id of the ranked TFT queue.
const RankedQueueID = 1100

// Known TFT queues, used to label matches on logs.
var QueueNames = map[int]string{
	1090: "NORMAL_TFT",
	1100: "RANKED_TFT",
	1130: "RANKED_TFT_TURBO",
	1150: "RANKED_TFT_DOUBLE_UP",
	1160: "RANKED_TFT_DOUBLE_UP",
}

// QueueName returns the queue name or UNKNOWN if the queue isn't mapped.
func QueueName(queueID int) string {
	if name, exists := QueueNames[queueID]; exists {
		return name
	}
	return "UNKNOWN"
}
