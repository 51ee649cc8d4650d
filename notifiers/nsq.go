package notifiers

import (
	"crypto/tls"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/nsqio/go-nsq"
	"go.uber.org/zap"
)

// Publisher publish message to a topic
type Publisher interface {
	Publish(topic string, body []byte) error
	Stop()
}

// Nsq notify by nsq
type Nsq struct {
	topic     string
	publisher Publisher
}

// NewNsq create new nsq notifier, tls is enabled when both tlsCert and tlsKey are set
func NewNsq(broker, tlsCert, tlsKey, topic string) (*Nsq, error) {
	config := nsq.NewConfig()
	if tlsCert != "" && tlsKey != "" {
		cert, err := tls.LoadX509KeyPair(tlsCert, tlsKey)
		if err != nil {
			zap.L().Error("init tls certificate failed",
				zap.Error(err),
				zap.String("tlsCert", tlsCert),
				zap.String("tlsKey", tlsKey))
			return nil, fmt.Errorf("load nsq tls certificate: %w", err)
		}

		config.TlsV1 = true
		config.TlsConfig = &tls.Config{
			InsecureSkipVerify: true,
			Certificates:       []tls.Certificate{cert},
		}
	}

	producer, err := nsq.NewProducer(broker, config)
	if err != nil {
		zap.L().Error("init nsq producer failed",
			zap.Error(err),
			zap.String("broker", broker))
		return nil, fmt.Errorf("create nsq producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	return NewNsqWithPublisher(producer, topic), nil
}

// NewNsqWithPublisher create nsq notifier on an existing publisher
func NewNsqWithPublisher(publisher Publisher, topic string) *Nsq {
	return &Nsq{topic: topic, publisher: publisher}
}

// Notify publish cycle result, failures are logged only
func (s Nsq) Notify(result *CycleResult) {
	buffer, err := sonic.Marshal(result)
	if err != nil {
		zap.L().Warn("marshal board cycle result failed",
			zap.Error(err),
			zap.Stringer("cycle", result.ID))
		return
	}

	err = s.publisher.Publish(s.topic, buffer)
	if err != nil {
		zap.L().Warn("publish board cycle result failed",
			zap.Error(err),
			zap.String("topic", s.topic),
			zap.Stringer("cycle", result.ID))
		return
	}

	zap.L().Debug("publish board cycle result success",
		zap.String("topic", s.topic),
		zap.Stringer("cycle", result.ID),
		zap.Int("rows", len(result.Rows)))
}

// Close close producer
func (s Nsq) Close() {
	if s.publisher == nil {
		return
	}

	s.publisher.Stop()
}
