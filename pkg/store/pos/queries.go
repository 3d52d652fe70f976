package pos

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// predicate is a doc_date filter and the number of placeholders it binds.
type predicate struct {
	clause string
	args   int
}

var (
	yearPrefix = predicate{clause: "LEFT(doc_date, 4) = $1", args: 1}
	singleDay  = predicate{clause: "doc_date = $1", args: 1}
	dateRange  = predicate{clause: "doc_date BETWEEN $1 AND $2", args: 2}
)

// Line items whose amount or unit price is exactly 0 or 1 are test and
// placeholder entries and never count towards revenue.
const itemRevenueTemplate = `
	SELECT SUM(A.item_amount_after_discount) AS revenue,
		COUNT(DISTINCT B.pos_id) AS total_order
	FROM pj.trx_pos_item A
	JOIN pj.trx_pos B ON A.pos_id = B.pos_id
	WHERE %s
		AND A.item_amount_after_discount <> 1
		AND A.item_amount_after_discount <> 0
		AND A.unit_sell_price <> 1
		AND A.unit_sell_price <> 0
		AND A.product_id = ANY($%d)`

// The payment ledger variant counts every payment row and applies neither
// the sentinel nor the Relia product filter.
const paymentLedgerRevenueQuery = `
	SELECT SUM(payment_amount) AS revenue,
		COUNT(*) AS total_order
	FROM pj.trx_pos_payment A
	JOIN pj.trx_pos B ON A.pos_id = B.pos_id
	WHERE doc_date BETWEEN $1 AND $2`

const topProductsTemplate = `
	SELECT C.product_name AS product_name,
		D.ctgr_product_name AS product_category_name,
		%[1]s AS total
	FROM pj.trx_pos_item A
	JOIN pj.trx_pos B ON A.pos_id = B.pos_id
	JOIN public.m_product C ON A.product_id = C.product_id
	JOIN m_ctgr_product D ON D.ctgr_product_id = C.ctgr_product_id
	WHERE %[2]s
		AND A.product_id = ANY($%[3]d)
	GROUP BY C.product_id, D.ctgr_product_name
	ORDER BY %[1]s DESC, C.product_id
	LIMIT %[4]d`

const (
	queueCountQuery = `
	SELECT count(*) AS total
	FROM mstr.m_consultation_queue
	WHERE doc_date = $1`

	orderCountQuery = `
	SELECT count(*) AS total
	FROM pj.trx_pos
	WHERE doc_date = $1`

	// trx_pos_payment has no doc_date; the day is the prefix of create_datetime.
	paymentCountQuery = `
	SELECT count(*) AS total
	FROM pj.trx_pos_payment
	WHERE LEFT(create_datetime, 8) = $1`
)

// RankingLimit caps every product ranking.
const RankingLimit = 10

var rankingExpressions = map[domain.RankingMetric]string{
	domain.RankingBySales:    "SUM(A.unit_sell_price)",
	domain.RankingByQuantity: "SUM(A.qty)",
}

func itemRevenueQuery(p predicate) string {
	return fmt.Sprintf(itemRevenueTemplate, p.clause, p.args+1)
}

func topProductsQuery(metric domain.RankingMetric, p predicate) (string, error) {
	expr, ok := rankingExpressions[metric]
	if !ok {
		return "", fmt.Errorf("unsupported ranking metric: %q", metric)
	}
	return fmt.Sprintf(topProductsTemplate, expr, p.clause, p.args+1, RankingLimit), nil
}
