/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/suparena/itemfetch/datastore"
	"github.com/suparena/itemfetch/errors"
	"github.com/suparena/itemfetch/storagemodels"
)

// GetItemAPI is the subset of the DynamoDB client used by Client.
type GetItemAPI interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
}

// ClientConfig holds what is needed to reach a DynamoDB endpoint.
type ClientConfig struct {
	Region string
	// Endpoint overrides the service endpoint, e.g. http://localhost:8000 for DynamoDB Local.
	Endpoint string
	// AccessKey and SecretKey are optional. When both are empty the default
	// AWS credential chain is used.
	AccessKey string
	SecretKey string
}

// Client implements datastore.Getter on top of AWS DynamoDB. It is created once,
// shared between callers and released with Close.
type Client struct {
	api    GetItemAPI
	logger *zap.Logger
	closed atomic.Bool
}

var _ datastore.Getter = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewDynamoDBClient initializes a DynamoDB SDK client from cfg.
func NewDynamoDBClient(ctx context.Context, cfg ClientConfig) (*sdk.Client, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("region is required")
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var clientOpts []func(*sdk.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *sdk.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return sdk.NewFromConfig(awsCfg, clientOpts...), nil
}

// NewClient builds a Client connected to the endpoint described by cfg.
func NewClient(ctx context.Context, cfg ClientConfig, opts ...Option) (*Client, error) {
	api, err := NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	c := NewClientWithAPI(api, opts...)
	c.logger.Debug("dynamodb client initialized",
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint),
	)
	return c, nil
}

// NewClientWithAPI wraps an existing GetItem implementation.
func NewClientWithAPI(api GetItemAPI, opts ...Option) *Client {
	c := &Client{
		api:    api,
		logger: zlog,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues one GetItem request. A successful response without attributes is
// reported as found == false. Request errors are returned as the SDK reports
// them.
func (c *Client) Get(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error) {
	if c.closed.Load() {
		return nil, false, errors.ErrClosed
	}

	input := BuildGetItemInput(params)

	c.logger.Debug("get item",
		zap.String("table", params.TableName),
		zap.Int("key_fields", len(params.Key)),
		zap.Strings("projection", params.Projection),
		zap.Bool("consistent_read", params.ConsistentRead),
	)

	out, err := c.api.GetItem(ctx, input)
	if err != nil {
		c.logger.Debug("get item failed", zap.String("table", params.TableName), zap.Error(err))
		return nil, false, err
	}
	if out == nil || len(out.Item) == 0 {
		return nil, false, nil
	}

	return storagemodels.Item(out.Item), true, nil
}

// Close releases the client. Further calls to Get fail with errors.ErrClosed.
// The SDK client holds no resources that need explicit release.
func (c *Client) Close() error {
	c.closed.Store(true)
	return nil
}

// BuildGetItemInput translates params into a GetItem request. Projection names
// are bound through expression attribute names so reserved words such as
// "default" are accepted.
func BuildGetItemInput(params *storagemodels.GetParams) *sdk.GetItemInput {
	input := &sdk.GetItemInput{
		TableName: aws.String(params.TableName),
		Key:       params.Key,
	}
	if params.ConsistentRead {
		input.ConsistentRead = aws.Bool(true)
	}

	if expr, names := buildProjection(params.Projection); expr != "" {
		input.ProjectionExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
	}
	return input
}

// buildProjection returns "#p0, #p1, ..." and the placeholder mapping, in the
// order of attrs.
func buildProjection(attrs []string) (string, map[string]string) {
	if len(attrs) == 0 {
		return "", nil
	}

	placeholders := make([]string, 0, len(attrs))
	names := make(map[string]string, len(attrs))
	for i, attr := range attrs {
		placeholder := fmt.Sprintf("#p%d", i)
		placeholders = append(placeholders, placeholder)
		names[placeholder] = attr
	}
	return strings.Join(placeholders, ", "), names
}
