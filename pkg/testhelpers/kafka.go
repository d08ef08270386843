package testhelpers

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
	"github.com/testcontainers/testcontainers-go"
	kafkacontainer "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// StartKafka launches a single-node Kafka broker and creates the given topics.
func StartKafka(ctx context.Context, topics ...string) (testcontainers.Container, string, error) {
	kafkaC, err := kafkacontainer.Run(ctx, "confluentinc/confluent-local:7.5.0",
		testcontainers.WithEnv(map[string]string{"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true"}),
	)
	if err != nil {
		return nil, "", err
	}

	brokers, err := kafkaC.Brokers(ctx)
	if err == nil && len(brokers) == 0 {
		err = errors.New("kafka container reported no brokers")
	}
	if err != nil {
		kafkaC.Terminate(context.Background())
		return nil, "", err
	}
	broker := brokers[0]

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		kafkaC.Terminate(context.Background())
		return nil, "", err
	}
	defer conn.Close()

	configs := make([]kafka.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		configs = append(configs, kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	}
	if err := conn.CreateTopics(configs...); err != nil {
		kafkaC.Terminate(context.Background())
		return nil, "", err
	}
	return kafkaC, broker, nil
}
