package dns

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"golang.org/x/time/rate"

	sharedConfig "github.com/estately/estately/internal/shared/config"
	"github.com/estately/estately/internal/shared/logger"
)

// Route53 allows five requests per second per account.
const defaultRatePerSecond = 5

// RecordAPI is the subset of *route53.Client used here.
type RecordAPI interface {
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
	ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
}

// Route53Provisioner manages the A records of tenant hostnames.
type Route53Provisioner struct {
	client   RecordAPI
	zoneID   string
	publicIP string
	ttl      int64
	limiter  *rate.Limiter
	logger   logger.Interface
}

func NewRoute53Provisioner(ctx context.Context, cfg sharedConfig.DNSConfig, publicIP string, log logger.Interface) (*Route53Provisioner, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewRoute53ProvisionerWithClient(route53.NewFromConfig(awsCfg), cfg, publicIP, log), nil
}

func NewRoute53ProvisionerWithClient(client RecordAPI, cfg sharedConfig.DNSConfig, publicIP string, log logger.Interface) *Route53Provisioner {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 300
	}
	return &Route53Provisioner{
		client:   client,
		zoneID:   cfg.HostedZoneID,
		publicIP: publicIP,
		ttl:      ttl,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:   log,
	}
}

func fqdn(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if !strings.HasSuffix(host, ".") {
		host += "."
	}
	return host
}

func (p *Route53Provisioner) change(ctx context.Context, action types.ChangeAction, host string) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := p.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(p.zoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{{
				Action: action,
				ResourceRecordSet: &types.ResourceRecordSet{
					Name:            aws.String(fqdn(host)),
					Type:            types.RRTypeA,
					TTL:             aws.Int64(p.ttl),
					ResourceRecords: []types.ResourceRecord{{Value: aws.String(p.publicIP)}},
				},
			}},
		},
	})
	return err
}

// CreateRecord upserts an A record for host pointing at the service IP.
func (p *Route53Provisioner) CreateRecord(ctx context.Context, host string) error {
	if err := p.change(ctx, types.ChangeActionUpsert, host); err != nil {
		p.logger.Errorw("failed to create dns record", "host", host, "error", err)
		return fmt.Errorf("failed to create dns record for %s: %w", host, err)
	}
	p.logger.Infow("dns record created", "host", host, "ip", p.publicIP)
	return nil
}

func (p *Route53Provisioner) RecordExists(ctx context.Context, host string) (bool, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return false, err
	}
	name := fqdn(host)
	out, err := p.client.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId:    aws.String(p.zoneID),
		StartRecordName: aws.String(name),
		StartRecordType: types.RRTypeA,
		MaxItems:        aws.Int32(1),
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up dns record for %s: %w", host, err)
	}
	for _, rs := range out.ResourceRecordSets {
		if strings.EqualFold(aws.ToString(rs.Name), name) && rs.Type == types.RRTypeA {
			return true, nil
		}
	}
	return false, nil
}

// DeleteRecord removes the A record of host. A missing record is not an
// error.
func (p *Route53Provisioner) DeleteRecord(ctx context.Context, host string) error {
	exists, err := p.RecordExists(ctx, host)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := p.change(ctx, types.ChangeActionDelete, host); err != nil {
		var notFound *types.InvalidChangeBatch
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to delete dns record for %s: %w", host, err)
	}
	p.logger.Infow("dns record deleted", "host", host)
	return nil
}

// NoopProvisioner is used when DNS management is disabled.
type NoopProvisioner struct {
	logger logger.Interface
}

func NewNoopProvisioner(log logger.Interface) *NoopProvisioner {
	return &NoopProvisioner{logger: log}
}

func (p *NoopProvisioner) CreateRecord(_ context.Context, host string) error {
	p.logger.Debugw("dns disabled, skipping record creation", "host", host)
	return nil
}

func (p *NoopProvisioner) RecordExists(context.Context, string) (bool, error) {
	return true, nil
}

func (p *NoopProvisioner) DeleteRecord(context.Context, string) error {
	return nil
}
