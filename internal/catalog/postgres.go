package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadPostgres reads card templates from the cards table. The table is
// seeded by scripts/import_cards.go; see that file for the schema.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool) (*Catalog, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, name, card_type, cost, attack, defense, description
		FROM cards
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var c Card
		var cardType string
		if err := rows.Scan(&c.ID, &c.Name, &cardType, &c.Cost, &c.Attack, &c.Defense, &c.Description); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		c.Type = CardType(cardType)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("cards table is empty; run scripts/import_cards.go")
	}

	return New(cards)
}
