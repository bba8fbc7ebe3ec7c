// Package metrics publishes dashboard activity to CloudWatch.
// file: metrics/metrics.go
package metrics

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"trading-cards-admin/logger"
)

// Metric names.
const (
	PendingSubmissions  = "PendingSubmissions"
	ReviewDecisions     = "ReviewDecisions"
	QuestsCreated       = "QuestsCreated"
	QuestsDeleted       = "QuestsDeleted"
	UsersProvisioned    = "UsersProvisioned"
	ResetInvocations    = "ResetInvocations"
	LiveFeedConnections = "LiveFeedConnections"
)

// Publisher records a single metric value. dims are name/value pairs.
type Publisher interface {
	Count(name string, value float64, dims ...string)
}

// Nop discards every metric.
type Nop struct{}

// Count does nothing.
func (Nop) Count(string, float64, ...string) {}

// CloudWatch pushes metrics with PutMetricData.
type CloudWatch struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	eventID   string
}

// NewCloudWatch builds a publisher from the default AWS session chain.
func NewCloudWatch(namespace, eventID string) (*CloudWatch, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return NewCloudWatchWithClient(cloudwatch.New(sess), namespace, eventID), nil
}

// NewCloudWatchWithClient wraps an existing client, mostly for tests.
func NewCloudWatchWithClient(client cloudwatchiface.CloudWatchAPI, namespace, eventID string) *CloudWatch {
	return &CloudWatch{client: client, namespace: namespace, eventID: eventID}
}

// Count publishes value under name, tagged with the event and any extra dimensions.
func (c *CloudWatch) Count(name string, value float64, dims ...string) {
	dimensions := []*cloudwatch.Dimension{
		{Name: aws.String("EventID"), Value: aws.String(c.eventID)},
	}
	for i := 0; i+1 < len(dims); i += 2 {
		dimensions = append(dimensions, &cloudwatch.Dimension{
			Name:  aws.String(dims[i]),
			Value: aws.String(dims[i+1]),
		})
	}

	_, err := c.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(c.namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(name),
				Dimensions: dimensions,
				Timestamp:  aws.Time(time.Now()),
				Value:      aws.Float64(value),
				Unit:       aws.String(cloudwatch.StandardUnitCount),
			},
		},
	})
	if err != nil {
		// metrics are best effort
		logger.Error.Printf("[metrics.Count] CloudWatch metric failed (%s): %v", name, err)
	}
}
