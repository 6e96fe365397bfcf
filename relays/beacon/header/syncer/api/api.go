package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	ConstructRequestErrorMessage = "construct header request"
	DoHTTPRequestErrorMessage    = "do http request"
	HTTPStatusNotOKErrorMessage  = "http status not ok"
	ReadResponseBodyErrorMessage = "read response body"
	UnmarshalBodyErrorMessage    = "unmarshal body"
)

var (
	ErrNotFound                        = errors.New("not found")
	ErrSyncCommitteeUpdateNotAvailable = errors.New("no sync committee update available")
)

type BeaconAPI interface {
	GetHeader(ctx context.Context, blockRoot common.Hash) (BeaconHeader, error)
	GetHeaderBySlot(ctx context.Context, slot uint64) (BeaconHeader, error)
	GetBootstrap(ctx context.Context, blockRoot common.Hash) (BootstrapResponse, error)
	GetSyncCommitteePeriodUpdate(ctx context.Context, period uint64) (SyncCommitteePeriodUpdateResponse, error)
	GetLatestFinalizedUpdate(ctx context.Context) (LatestFinalisedUpdateResponse, error)
}

type BeaconClient struct {
	httpClient *http.Client
	endpoint   string
}

var _ BeaconAPI = &BeaconClient{}

func NewBeaconClient(endpoint string) *BeaconClient {
	return &BeaconClient{
		httpClient: &http.Client{},
		endpoint:   strings.TrimSuffix(endpoint, "/"),
	}
}

func (b *BeaconClient) GetBootstrap(ctx context.Context, blockRoot common.Hash) (BootstrapResponse, error) {
	var response BootstrapResponse
	err := b.get(ctx, fmt.Sprintf("/eth/v1/beacon/light_client/bootstrap/%s", blockRoot), &response)
	if err != nil {
		return BootstrapResponse{}, err
	}

	return response, nil
}

func (b *BeaconClient) GetHeader(ctx context.Context, blockRoot common.Hash) (BeaconHeader, error) {
	return b.getHeader(ctx, blockRoot.Hex())
}

func (b *BeaconClient) GetHeaderBySlot(ctx context.Context, slot uint64) (BeaconHeader, error) {
	return b.getHeader(ctx, fmt.Sprintf("%d", slot))
}

func (b *BeaconClient) getHeader(ctx context.Context, blockID string) (BeaconHeader, error) {
	var response BeaconHeaderResponse
	err := b.get(ctx, fmt.Sprintf("/eth/v1/beacon/headers/%s", blockID), &response)
	if err != nil {
		return BeaconHeader{}, err
	}

	return response.Data.Header.Message.ToBeaconHeader()
}

func (b *BeaconClient) GetSyncCommitteePeriodUpdate(ctx context.Context, period uint64) (SyncCommitteePeriodUpdateResponse, error) {
	var response []SyncCommitteePeriodUpdateResponse
	err := b.get(ctx, fmt.Sprintf("/eth/v1/beacon/light_client/updates?start_period=%d&count=1", period), &response)
	if err != nil {
		return SyncCommitteePeriodUpdateResponse{}, err
	}

	if len(response) == 0 {
		return SyncCommitteePeriodUpdateResponse{}, ErrSyncCommitteeUpdateNotAvailable
	}

	return response[0], nil
}

func (b *BeaconClient) GetLatestFinalizedUpdate(ctx context.Context) (LatestFinalisedUpdateResponse, error) {
	var response LatestFinalisedUpdateResponse
	err := b.get(ctx, "/eth/v1/beacon/light_client/finality_update", &response)
	if err != nil {
		return LatestFinalisedUpdateResponse{}, err
	}

	return response, nil
}

func (b *BeaconClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ConstructRequestErrorMessage, err)
	}

	req.Header.Set("accept", "application/json")
	res, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", DoHTTPRequestErrorMessage, err)
	}
	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", ReadResponseBodyErrorMessage, err)
	}

	if res.StatusCode != http.StatusOK {
		if res.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}

		var response ErrorMessage
		if json.Unmarshal(bodyBytes, &response) == nil && strings.Contains(response.Message, "No partialUpdate available") {
			return ErrSyncCommitteeUpdateNotAvailable
		}

		return fmt.Errorf("%s: %d", HTTPStatusNotOKErrorMessage, res.StatusCode)
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		return fmt.Errorf("%s: %w", UnmarshalBodyErrorMessage, err)
	}

	return nil
}
