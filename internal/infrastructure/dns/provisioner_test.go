package dns

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/estately/estately/internal/shared/config"
	"github.com/estately/estately/internal/shared/logger"
)

type fakeRecordAPI struct {
	records map[string]bool
	changes []types.Change
	err     error
}

func (f *fakeRecordAPI) ChangeResourceRecordSets(_ context.Context, in *route53.ChangeResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range in.ChangeBatch.Changes {
		f.changes = append(f.changes, c)
		name := aws.ToString(c.ResourceRecordSet.Name)
		switch c.Action {
		case types.ChangeActionUpsert:
			f.records[name] = true
		case types.ChangeActionDelete:
			delete(f.records, name)
		}
	}
	return &route53.ChangeResourceRecordSetsOutput{}, nil
}

func (f *fakeRecordAPI) ListResourceRecordSets(_ context.Context, in *route53.ListResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := &route53.ListResourceRecordSetsOutput{}
	if f.records[aws.ToString(in.StartRecordName)] {
		out.ResourceRecordSets = []types.ResourceRecordSet{{Name: in.StartRecordName, Type: types.RRTypeA}}
	}
	return out, nil
}

func newProvisioner(api RecordAPI) *Route53Provisioner {
	cfg := sharedConfig.DNSConfig{HostedZoneID: "Z1", TTL: 60, RatePerSecond: 1000}
	return NewRoute53ProvisionerWithClient(api, cfg, "203.0.113.10", logger.NewNopLogger())
}

func TestRoute53Provisioner_Lifecycle(t *testing.T) {
	api := &fakeRecordAPI{records: map[string]bool{}}
	p := newProvisioner(api)
	ctx := context.Background()

	exists, err := p.RecordExists(ctx, "abc.estately.test")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, p.CreateRecord(ctx, "ABC.estately.test"))
	require.Len(t, api.changes, 1)
	rs := api.changes[0].ResourceRecordSet
	assert.Equal(t, "abc.estately.test.", aws.ToString(rs.Name))
	assert.Equal(t, "203.0.113.10", aws.ToString(rs.ResourceRecords[0].Value))
	assert.Equal(t, int64(60), aws.ToInt64(rs.TTL))

	exists, err = p.RecordExists(ctx, "abc.estately.test")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, p.DeleteRecord(ctx, "abc.estately.test"))
	assert.Empty(t, api.records)

	// deleting again is a no-op
	require.NoError(t, p.DeleteRecord(ctx, "abc.estately.test"))
	assert.Len(t, api.changes, 2)
}

func TestRoute53Provisioner_Failure(t *testing.T) {
	p := newProvisioner(&fakeRecordAPI{records: map[string]bool{}, err: errors.New("throttled")})

	err := p.CreateRecord(context.Background(), "abc.estately.test")
	assert.ErrorContains(t, err, "throttled")
}

func TestRoute53Provisioner_CanceledContext(t *testing.T) {
	p := newProvisioner(&fakeRecordAPI{records: map[string]bool{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, p.CreateRecord(ctx, "abc.estately.test"))
}
