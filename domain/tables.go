package domain

// Table is a mongo collection name
type Table string

const (
	TableAccounts      Table = "accounts"
	TableAuctions      Table = "auctions"
	TableAuctionEvents Table = "auction_events"
	TableSettings      Table = "settings"
	TableMarketFlags   Table = "market_flags"
	TableBalances      Table = "balances"
	TableHoldings      Table = "holdings"
)
