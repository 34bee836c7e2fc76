package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain_transfer "github.com/fieldops/stock-transfers-service/internal/domain/transfer"
	port_persistence "github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence"
)

const awaitingStates = `'AWAITING_BOTH', 'AWAITING_INITIATOR', 'AWAITING_COUNTERPARTY'`

type transferRequestRepository struct {
	db *DB
}

func NewTransferRequestRepository(db *DB) port_persistence.TransferRequestRepository {
	return &transferRequestRepository{db: db}
}

func (r *transferRequestRepository) Create(ctx context.Context, t *domain_transfer.TransferRequest) error {
	conn := r.db.conn(ctx)

	const insertRequest = `
		INSERT INTO transfer_requests (
			id, kind, initiator_party_id, counterparty_party_id,
			initiator_code, counterparty_code,
			source_location_id, destination_location_id,
			state, initiator_confirmed_at, counterparty_confirmed_at,
			created_at, expires_at, settled_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := conn.ExecContext(ctx, insertRequest,
		t.ID().String(),
		string(t.Kind()),
		t.InitiatorPartyID(),
		t.CounterpartyPartyID(),
		t.CodeIssuedTo(domain_transfer.RoleInitiator),
		t.CodeIssuedTo(domain_transfer.RoleCounterparty),
		t.SourceLocationID(),
		t.DestinationLocationID(),
		string(t.State()),
		nullableTime(t.InitiatorConfirmedAt()),
		nullableTime(t.CounterpartyConfirmedAt()),
		t.CreatedAt().UTC().Format(timeFormat),
		t.ExpiresAt().UTC().Format(timeFormat),
		nullableTime(t.SettledAt()),
	)
	if err != nil {
		return fmt.Errorf("insert transfer request: %w", err)
	}

	const insertLine = `
		INSERT INTO transfer_lines (request_id, line_no, product_id, quantity, unit)
		VALUES (?, ?, ?, ?, ?)
	`

	for i, line := range t.Payload() {
		_, err := conn.ExecContext(ctx, insertLine,
			t.ID().String(), i, line.ProductID, line.Quantity.String(), line.Unit)
		if err != nil {
			return fmt.Errorf("insert transfer line %d: %w", i, err)
		}
	}

	return nil
}

func (r *transferRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain_transfer.TransferRequest, error) {
	conn := r.db.conn(ctx)

	const selectRequest = `
		SELECT id, kind, initiator_party_id, counterparty_party_id,
		       initiator_code, counterparty_code,
		       source_location_id, destination_location_id,
		       state, initiator_confirmed_at, counterparty_confirmed_at,
		       created_at, expires_at, settled_at
		FROM transfer_requests
		WHERE id = ?
	`

	row := conn.QueryRowContext(ctx, selectRequest, id.String())

	request, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.loadLines(ctx, conn, id)
	if err != nil {
		return nil, err
	}
	request.Payload = lines

	return domain_transfer.Rehydrate(*request), nil
}

func (r *transferRequestRepository) FindPendingForParty(ctx context.Context, partyID string, now time.Time) ([]*domain_transfer.TransferRequest, error) {
	conn := r.db.conn(ctx)

	query := fmt.Sprintf(`
		SELECT id FROM transfer_requests
		WHERE (initiator_party_id = ? OR counterparty_party_id = ?)
		  AND state IN (%s)
		  AND expires_at > ?
		ORDER BY created_at, id
	`, awaitingStates)

	rows, err := conn.QueryContext(ctx, query, partyID, partyID, now.UTC().Format(timeFormat))
	if err != nil {
		return nil, fmt.Errorf("query pending transfers: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan pending transfer id: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse pending transfer id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending transfers: %w", err)
	}

	requests := make([]*domain_transfer.TransferRequest, 0, len(ids))
	for _, id := range ids {
		request, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func (r *transferRequestRepository) Update(ctx context.Context, t *domain_transfer.TransferRequest, expected domain_transfer.State) error {
	conn := r.db.conn(ctx)

	const update = `
		UPDATE transfer_requests
		SET state = ?,
		    initiator_confirmed_at = ?,
		    counterparty_confirmed_at = ?,
		    settled_at = ?
		WHERE id = ? AND state = ?
	`

	res, err := conn.ExecContext(ctx, update,
		string(t.State()),
		nullableTime(t.InitiatorConfirmedAt()),
		nullableTime(t.CounterpartyConfirmedAt()),
		nullableTime(t.SettledAt()),
		t.ID().String(),
		string(expected),
	)
	if err != nil {
		return fmt.Errorf("update transfer request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update transfer request: rows affected: %w", err)
	}
	if affected == 0 {
		var exists int
		err := conn.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM transfer_requests WHERE id = ?`, t.ID().String()).Scan(&exists)
		if err != nil {
			return fmt.Errorf("update transfer request: existence check: %w", err)
		}
		if exists == 0 {
			return port_persistence.ErrNotFound
		}
		return port_persistence.ErrStaleState
	}

	return nil
}

func (r *transferRequestRepository) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	conn := r.db.conn(ctx)

	query := fmt.Sprintf(`
		UPDATE transfer_requests
		SET state = 'EXPIRED'
		WHERE id = ? AND state IN (%s) AND expires_at <= ?
	`, awaitingStates)

	res, err := conn.ExecContext(ctx, query, id.String(), now.UTC().Format(timeFormat))
	if err != nil {
		return false, fmt.Errorf("expire transfer request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("expire transfer request: rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *transferRequestRepository) ListExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	conn := r.db.conn(ctx)

	query := fmt.Sprintf(`
		SELECT id FROM transfer_requests
		WHERE state IN (%s) AND expires_at <= ?
		ORDER BY expires_at
		LIMIT ?
	`, awaitingStates)

	rows, err := conn.QueryContext(ctx, query, now.UTC().Format(timeFormat), limit)
	if err != nil {
		return nil, fmt.Errorf("query expired candidates: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan expired candidate: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse expired candidate id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *transferRequestRepository) loadLines(ctx context.Context, conn querier, id uuid.UUID) ([]domain_transfer.PayloadLine, error) {
	const selectLines = `
		SELECT product_id, quantity, unit
		FROM transfer_lines
		WHERE request_id = ?
		ORDER BY line_no
	`

	rows, err := conn.QueryContext(ctx, selectLines, id.String())
	if err != nil {
		return nil, fmt.Errorf("query transfer lines: %w", err)
	}
	defer rows.Close()

	var lines []domain_transfer.PayloadLine
	for rows.Next() {
		var (
			productID, rawQuantity, unit string
		)
		if err := rows.Scan(&productID, &rawQuantity, &unit); err != nil {
			return nil, fmt.Errorf("scan transfer line: %w", err)
		}

		quantity, err := decimal.NewFromString(rawQuantity)
		if err != nil {
			return nil, fmt.Errorf("parse line quantity %q: %w", rawQuantity, err)
		}

		lines = append(lines, domain_transfer.PayloadLine{
			ProductID: productID,
			Quantity:  quantity,
			Unit:      unit,
		})
	}

	return lines, rows.Err()
}

func scanRequest(row *sql.Row) (*domain_transfer.RehydrateParams, error) {
	var (
		rawID, kind, initiatorParty, counterpartyParty      string
		initiatorCode, counterpartyCode                     string
		sourceLocation, destinationLocation, state          string
		initiatorConfirmed, counterpartyConfirmed, settled  sql.NullString
		rawCreated, rawExpires                              string
	)

	err := row.Scan(
		&rawID, &kind, &initiatorParty, &counterpartyParty,
		&initiatorCode, &counterpartyCode,
		&sourceLocation, &destinationLocation,
		&state, &initiatorConfirmed, &counterpartyConfirmed,
		&rawCreated, &rawExpires, &settled,
	)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse request id: %w", err)
	}

	createdAt, err := time.Parse(timeFormat, rawCreated)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	expiresAt, err := time.Parse(timeFormat, rawExpires)
	if err != nil {
		return nil, fmt.Errorf("parse expires_at: %w", err)
	}

	initiatorAt, err := parseNullableTime(initiatorConfirmed)
	if err != nil {
		return nil, fmt.Errorf("parse initiator_confirmed_at: %w", err)
	}

	counterpartyAt, err := parseNullableTime(counterpartyConfirmed)
	if err != nil {
		return nil, fmt.Errorf("parse counterparty_confirmed_at: %w", err)
	}

	settledAt, err := parseNullableTime(settled)
	if err != nil {
		return nil, fmt.Errorf("parse settled_at: %w", err)
	}

	return &domain_transfer.RehydrateParams{
		RequestID:               id,
		Kind:                    domain_transfer.Kind(kind),
		InitiatorPartyID:        initiatorParty,
		CounterpartyPartyID:     counterpartyParty,
		InitiatorCode:           initiatorCode,
		CounterpartyCode:        counterpartyCode,
		SourceLocationID:        sourceLocation,
		DestinationLocationID:   destinationLocation,
		InitiatorConfirmedAt:    initiatorAt,
		CounterpartyConfirmedAt: counterpartyAt,
		State:                   domain_transfer.State(state),
		CreatedAt:               createdAt,
		ExpiresAt:               expiresAt,
		SettledAt:               settledAt,
	}, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeFormat)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := time.Parse(timeFormat, v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
