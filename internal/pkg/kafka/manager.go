package kafka

import (
	"bemusicshare/internal/api/config"
	"bemusicshare/internal/pkg/es"
	"bemusicshare/internal/pkg/mongo"
	"bemusicshare/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	votesConsumer sarama.ConsumerGroup
	votesHandler  sarama.ConsumerGroupHandler

	commentsConsumer sarama.ConsumerGroup
	commentsHandler  sarama.ConsumerGroupHandler

	followsConsumer sarama.ConsumerGroup
	followsHandler  sarama.ConsumerGroupHandler

	postsConsumer sarama.ConsumerGroup
	postsHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	postRepo repository.PostRepo,
	notifRepo mongo.NotificationRepo,
	postESRepo es.PostRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	votesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaVotes.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	votesHandler := NewVotesHandler(postRepo, notifRepo)

	commentsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaComments.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	commentsHandler := NewCommentsHandler(postRepo, notifRepo)

	followsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaFollows.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	followsHandler := NewFollowsHandler(notifRepo)

	postsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaPosts.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	postsHandler := NewPostsHandler(postRepo, postESRepo)

	return &ConsumerManager{
		votesConsumer:    votesConsumer,
		votesHandler:     votesHandler,
		commentsConsumer: commentsConsumer,
		commentsHandler:  commentsHandler,
		followsConsumer:  followsConsumer,
		followsHandler:   followsHandler,
		postsConsumer:    postsConsumer,
		postsHandler:     postsHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Votes Consumer
	go func() {
		topic := cfg.KafkaVotes.Topic
		log.Info("Votes consumer started", "topic", topic)
		for {
			if err := m.votesConsumer.Consume(ctx, []string{topic}, m.votesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Comments Consumer
	go func() {
		topic := cfg.KafkaComments.Topic
		log.Info("Comments consumer started", "topic", topic)
		for {
			if err := m.commentsConsumer.Consume(ctx, []string{topic}, m.commentsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Follows Consumer
	go func() {
		topic := cfg.KafkaFollows.Topic
		log.Info("Follows consumer started", "topic", topic)
		for {
			if err := m.followsConsumer.Consume(ctx, []string{topic}, m.followsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Posts Consumer
	go func() {
		topic := cfg.KafkaPosts.Topic
		log.Info("Posts consumer started", "topic", topic)
		for {
			if err := m.postsConsumer.Consume(ctx, []string{topic}, m.postsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.votesConsumer.Close(); err != nil {
		log.Error("Failed to close votes consumer", "err", err)
	}
	if err := m.commentsConsumer.Close(); err != nil {
		log.Error("Failed to close comments consumer", "err", err)
	}
	if err := m.followsConsumer.Close(); err != nil {
		log.Error("Failed to close follows consumer", "err", err)
	}
	if err := m.postsConsumer.Close(); err != nil {
		log.Error("Failed to close posts consumer", "err", err)
	}

	return nil
}
