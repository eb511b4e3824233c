package vybe

// Response shapes for the analytics endpoints the bot consumes. Every
// numeric field that the API serves inconsistently (string vs number)
// goes through Number so coercion happens exactly once, at the boundary.

// TokenRef identifies a token inside a PnL summary.
type TokenRef struct {
	TokenSymbol  string `json:"tokenSymbol"`
	TokenAddress string `json:"tokenAddress"`
	PnlUsd       Number `json:"pnlUsd"`
}

// PnLSummary aggregates trading performance for a wallet.
// WinRate is a 0-1 fraction; display code converts it to percent.
type PnLSummary struct {
	WinRate               Number    `json:"winRate"`
	RealizedPnlUsd        Number    `json:"realizedPnlUsd"`
	UnrealizedPnlUsd      Number    `json:"unrealizedPnlUsd"`
	TradesCount           Number    `json:"tradesCount"`
	WinningTradesCount    Number    `json:"winningTradesCount"`
	LosingTradesCount     Number    `json:"losingTradesCount"`
	TradesVolumeUsd       Number    `json:"tradesVolumeUsd"`
	AverageTradeUsd       Number    `json:"averageTradeUsd"`
	BestPerformingToken   *TokenRef `json:"bestPerformingToken"`
	WorstPerformingToken  *TokenRef `json:"worstPerformingToken"`
	UniqueTokensTraded    Number    `json:"uniqueTokensTraded"`
	PnlTrendSevenDays     []Number  `json:"pnlTrendSevenDays"`
}

// TokenMetric is the per-token breakdown attached to a PnL response.
type TokenMetric struct {
	TokenSymbol      string `json:"tokenSymbol"`
	TokenAddress     string `json:"tokenAddress"`
	RealizedPnlUsd   Number `json:"realizedPnlUsd"`
	UnrealizedPnlUsd Number `json:"unrealizedPnlUsd"`
	BuysVolumeUsd    Number `json:"buysVolumeUsd"`
	SellsVolumeUsd   Number `json:"sellsVolumeUsd"`
}

// PnLResponse is the get-wallet-PnL payload.
type PnLResponse struct {
	Summary      PnLSummary    `json:"summary"`
	TokenMetrics []TokenMetric `json:"tokenMetrics"`
}

// WalletToken is one fungible position in a wallet.
type WalletToken struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	MintAddress string `json:"mintAddress"`
	Amount      Number `json:"amount"`
	ValueUsd    Number `json:"valueUsd"`
	PriceUsd    Number `json:"priceUsd"`
	LogoURL     string `json:"logoUrl"`
}

// WalletTokensResponse is the get-wallet-tokens payload.
// TotalTokenValueUsd1dChange is a fraction (0.05 == +5%).
type WalletTokensResponse struct {
	Data                       []WalletToken `json:"data"`
	TotalTokenValueUsd         Number        `json:"totalTokenValueUsd"`
	TotalTokenValueUsd1dChange Number        `json:"totalTokenValueUsd1dChange"`
	TotalTokenCount            Number        `json:"totalTokenCount"`
	SolBalance                 Number        `json:"solBalance"`
	SolValueUsd                Number        `json:"solValueUsd"`
}

// NFTBalance is one NFT position.
type NFTBalance struct {
	Name           string `json:"name"`
	CollectionName string `json:"collectionName"`
	FloorPriceUsd  Number `json:"floorPriceUsd"`
}

// NFTBalanceResponse is the get-wallet-nfts payload.
type NFTBalanceResponse struct {
	Data []NFTBalance `json:"data"`
}

// SnapshotToken is a token slice inside a balance-history snapshot.
type SnapshotToken struct {
	Symbol   string `json:"symbol"`
	ValueUsd Number `json:"valueUsd"`
}

// BalanceSnapshot is one day in a wallet's balance history.
type BalanceSnapshot struct {
	Timestamp     int64           `json:"timestamp"`
	TotalValueUsd Number          `json:"totalValueUsd"`
	Tokens        []SnapshotToken `json:"tokens"`
}

// BalanceHistoryResponse is the token-balance time series payload.
type BalanceHistoryResponse struct {
	Data []BalanceSnapshot `json:"data"`
}

// TopHolder is one entry in a token's holder ranking.
type TopHolder struct {
	Rank                   int    `json:"rank"`
	OwnerAddress           string `json:"ownerAddress"`
	OwnerName              string `json:"ownerName"`
	Balance                Number `json:"balance"`
	ValueUsd               Number `json:"valueUsd"`
	PercentageOfSupplyHeld Number `json:"percentageOfSupplyHeld"`
	TokenSymbol            string `json:"tokenSymbol"`
}

// TopHoldersResponse is the get-top-holders payload.
type TopHoldersResponse struct {
	Data []TopHolder `json:"data"`
}

// TokenInfo describes a mint.
type TokenInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	MintAddress string `json:"mintAddress"`
	Price       Number `json:"price"`
	Decimals    int    `json:"decimal"`
}

// Candle is one OHLCV bucket.
type Candle struct {
	Time   int64  `json:"time"`
	Open   Number `json:"open"`
	High   Number `json:"high"`
	Low    Number `json:"low"`
	Close  Number `json:"close"`
	Volume Number `json:"volume"`
}

// OHLCVResponse is shared by the token, market and pair OHLCV endpoints.
type OHLCVResponse struct {
	Data []Candle `json:"data"`
}

// ProgramStats are the headline counters for a program.
type ProgramStats struct {
	TransactionCount Number `json:"transactionCount"`
	InstructionCount Number `json:"instructionCount"`
	ActiveUsers      Number `json:"activeUsers"`
}

// Program describes an on-chain program.
type Program struct {
	ProgramID   string        `json:"programId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Website     string        `json:"website"`
	Stats       *ProgramStats `json:"stats"`
}

// ProgramResponse is the get-program payload.
type ProgramResponse struct {
	Data Program `json:"data"`
}

// ActivityPoint is one bucket of a program's active-user series.
type ActivityPoint struct {
	Timestamp   int64  `json:"timestamp"`
	ActiveUsers Number `json:"activeUsers"`
}

// ActiveUsersResponse is the program activity time series payload.
type ActiveUsersResponse struct {
	Data []ActivityPoint `json:"data"`
}

// TVLPoint is one bucket of a program's TVL series.
type TVLPoint struct {
	Timestamp int64  `json:"timestamp"`
	TVL       Number `json:"tvl"`
}

// TVLResponse is the program TVL time series payload.
type TVLResponse struct {
	Data []TVLPoint `json:"data"`
}

// Transfer is one token transfer record.
type Transfer struct {
	TokenSymbol     string `json:"tokenSymbol"`
	MintAddress     string `json:"mintAddress"`
	SenderAddress   string `json:"senderAddress"`
	ReceiverAddress string `json:"receiverAddress"`
	Amount          Number `json:"amount"`
	UsdAmount       Number `json:"usdAmount"`
	Time            int64  `json:"time"`
	Signature       string `json:"signature"`
}

// TransfersResponse is the get-token-transfers payload.
type TransfersResponse struct {
	Data []Transfer `json:"data"`
}

// Trade is one DEX trade record.
type Trade struct {
	BaseSymbol       string `json:"baseSymbol"`
	QuoteSymbol      string `json:"quoteSymbol"`
	BaseMintAddress  string `json:"baseMintAddress"`
	QuoteMintAddress string `json:"quoteMintAddress"`
	Side             string `json:"side"`
	BaseAmount       Number `json:"baseAmount"`
	QuoteAmount      Number `json:"quoteAmount"`
	Price            Number `json:"price"`
	Time             int64  `json:"time"`
	Signature        string `json:"signature"`
}

// TradesResponse is the get-token-trades payload.
type TradesResponse struct {
	Data []Trade `json:"data"`
}
