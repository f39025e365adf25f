package sale

import (
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/sideshiftai/basepulse-ido/fixedpoint"
	"github.com/sideshiftai/basepulse-ido/state"
	"github.com/sideshiftai/basepulse-ido/vesting"
	"github.com/sideshiftai/basepulse-ido/whitelist"
)

// ReferralBonusPercent is credited to the contribution record when a valid
// referrer accompanies a purchase. The bonus is a separate ledger line and
// does not count against the wallet or tier caps.
const ReferralBonusPercent = 10

// Ledger owns one campaign's sale accounting. It consults its whitelist gate
// before accepting contributions and instructs its vesting ledger when
// participants claim their initial unlock.
type Ledger struct {
	handle     string
	assetToken string
	gate       *whitelist.Gate
	vesting    *vesting.Ledger
}

func New(handle, assetToken string, gate *whitelist.Gate, vestingLedger *vesting.Ledger) *Ledger {
	return &Ledger{
		handle:     handle,
		assetToken: assetToken,
		gate:       gate,
		vesting:    vestingLedger,
	}
}

func (l *Ledger) Handle() string {
	return l.handle
}

func (l *Ledger) AssetToken() string {
	return l.assetToken
}

func (l *Ledger) ownerKey() string {
	return fmt.Sprintf("saleowner_%s", l.handle)
}

func (l *Ledger) configKey() string {
	return fmt.Sprintf("saleconfig_%s", l.handle)
}

func (l *Ledger) vestingParamsKey() string {
	return fmt.Sprintf("vestingparams_%s", l.handle)
}

func (l *Ledger) tierKey(tierID uint8) string {
	return fmt.Sprintf("tier_%s_%d", l.handle, tierID)
}

func (l *Ledger) contributionKey(participant string, tierID uint8) string {
	return fmt.Sprintf("contribution_%s_%s_%d", l.handle, participant, tierID)
}

func (l *Ledger) withdrawnKey() string {
	return fmt.Sprintf("withdrawn_%s", l.handle)
}

// Initialize seeds ownership. Called once by the factory.
func (l *Ledger) Initialize(ctx state.TransactionContext, owner string) error {
	owner, err := state.NormalizeAddress(owner)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "invalid owner address", err)
	}

	existing, err := ctx.GetState(l.ownerKey())
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get sale owner", err)
	}
	if existing != nil {
		return state.NewCustomError(http.StatusConflict, fmt.Sprintf("sale ledger %s is already initialized", l.handle), nil)
	}

	if err := ctx.PutState(l.ownerKey(), []byte(owner)); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set sale owner", err)
	}

	return nil
}

func (l *Ledger) requireOwner(ctx state.TransactionContext) (string, error) {
	signer, err := state.Sender(ctx)
	if err != nil {
		return "", state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	owner, err := ctx.GetState(l.ownerKey())
	if err != nil {
		return "", state.NewCustomError(http.StatusInternalServerError, "failed to get sale owner", err)
	}
	if owner == nil || signer != string(owner) {
		return "", ErrUnauthorized
	}

	return signer, nil
}

// ConfigureSale validates and overwrites the sale configuration. Only the
// owner may call it, and only before the sale opens.
func (l *Ledger) ConfigureSale(ctx state.TransactionContext, params SaleConfigParams) error {
	if _, err := l.requireOwner(ctx); err != nil {
		return err
	}

	existing, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if existing != nil && ctx.GetTxTimestamp() >= existing.StartTime {
		return state.NewCustomError(http.StatusBadRequest, "sale has already started", nil)
	}

	if params.StartTime >= params.EndTime {
		return ErrInvalidConfig
	}

	unitPrice, err := fixedpoint.Parse(params.UnitPrice)
	if err != nil || unitPrice.Sign() <= 0 {
		return ErrInvalidConfig
	}
	hardCap, err := fixedpoint.Parse(params.HardCap)
	if err != nil || hardCap.Sign() <= 0 {
		return ErrInvalidConfig
	}
	softCap, err := fixedpoint.Parse(params.SoftCap)
	if err != nil || softCap.Sign() <= 0 {
		return ErrInvalidConfig
	}
	if softCap.Cmp(hardCap) > 0 {
		return ErrInvalidConfig
	}
	minContribution, err := fixedpoint.Parse(params.MinContribution)
	if err != nil || minContribution.Sign() <= 0 {
		return ErrInvalidConfig
	}
	maxGasPrice, err := fixedpoint.Parse(params.MaxGasPrice)
	if err != nil {
		return ErrInvalidConfig
	}

	config := &SaleConfig{
		StartTime:       params.StartTime,
		EndTime:         params.EndTime,
		UnitPrice:       unitPrice.String(),
		HardCap:         hardCap.String(),
		SoftCap:         softCap.String(),
		MinContribution: minContribution.String(),
		MaxGasPrice:     maxGasPrice.String(),
		TotalRaised:     "0",
		TotalSold:       "0",
	}
	if err := setSaleConfig(ctx, l.configKey(), config); err != nil {
		return err
	}

	return emitEvent(ctx, "SaleConfigured", SaleConfiguredEvent{
		Sale:            l.handle,
		StartTime:       config.StartTime,
		EndTime:         config.EndTime,
		UnitPrice:       config.UnitPrice,
		HardCap:         config.HardCap,
		SoftCap:         config.SoftCap,
		MinContribution: config.MinContribution,
		MaxGasPrice:     config.MaxGasPrice,
	})
}

// ConfigureTier creates or replaces one tier. Reconfiguration is forbidden
// once anything has sold in it.
func (l *Ledger) ConfigureTier(ctx state.TransactionContext, tierID uint8, params TierParams) error {
	if _, err := l.requireOwner(ctx); err != nil {
		return err
	}

	if tierID < 1 || tierID > whitelist.MaxTier {
		return ErrInvalidTier
	}
	if params.StartTime >= params.EndTime {
		return ErrInvalidConfig
	}

	unitPrice, err := fixedpoint.Parse(params.UnitPrice)
	if err != nil || unitPrice.Sign() <= 0 {
		return ErrInvalidConfig
	}
	maxPerWallet, err := fixedpoint.Parse(params.MaxAllocationPerWallet)
	if err != nil || maxPerWallet.Sign() <= 0 {
		return ErrInvalidConfig
	}
	totalAllocation, err := fixedpoint.Parse(params.TotalAllocation)
	if err != nil || totalAllocation.Sign() <= 0 {
		return ErrInvalidConfig
	}

	existing, err := getTier(ctx, l.tierKey(tierID))
	if err != nil {
		return err
	}
	if existing != nil {
		sold, err := fixedpoint.Parse(existing.TotalSold)
		if err != nil {
			return ErrInvalidAmount("tier", existing.TotalSold)
		}
		if sold.Sign() > 0 {
			return ErrTierAlreadySold
		}
	}

	tier := &Tier{
		StartTime:              params.StartTime,
		EndTime:                params.EndTime,
		UnitPrice:              unitPrice.String(),
		MaxAllocationPerWallet: maxPerWallet.String(),
		TotalAllocation:        totalAllocation.String(),
		TotalSold:              "0",
	}
	if err := setTier(ctx, l.tierKey(tierID), tier); err != nil {
		return err
	}

	return emitEvent(ctx, "TierConfigured", TierConfiguredEvent{
		Sale:                   l.handle,
		TierID:                 tierID,
		StartTime:              tier.StartTime,
		EndTime:                tier.EndTime,
		UnitPrice:              tier.UnitPrice,
		MaxAllocationPerWallet: tier.MaxAllocationPerWallet,
		TotalAllocation:        tier.TotalAllocation,
	})
}

// SetVestingParams configures the TGE split and the schedule shape applied
// when participants claim their initial unlock.
func (l *Ledger) SetVestingParams(ctx state.TransactionContext, params VestingParams) error {
	if _, err := l.requireOwner(ctx); err != nil {
		return err
	}

	if params.TGEPercent > 100 {
		return ErrInvalidConfig
	}
	if params.Duration == 0 || params.Cliff > params.Duration {
		return ErrInvalidConfig
	}

	if err := setVestingParams(ctx, l.vestingParamsKey(), &params); err != nil {
		return err
	}

	return emitEvent(ctx, "VestingParamsSet", VestingParamsSetEvent{
		Sale:       l.handle,
		TGEPercent: params.TGEPercent,
		Cliff:      params.Cliff,
		Duration:   params.Duration,
	})
}

// Contribute is the core state transition. Checks run in a fixed order so
// error precedence is deterministic: pause/finalize, tier window, gas gate,
// whitelist, minimum, caps.
func (l *Ledger) Contribute(ctx state.TransactionContext, tierID uint8, amount string, proof []string, referrer string) error {
	participant, err := state.Sender(ctx)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if config == nil {
		return state.NewCustomError(http.StatusBadRequest, "sale is not configured", nil)
	}
	if config.IsPaused {
		return ErrSalePaused
	}
	if config.IsFinalized {
		return ErrSaleFinalized
	}

	if tierID < 1 || tierID > whitelist.MaxTier {
		return ErrInvalidTier
	}
	tier, err := getTier(ctx, l.tierKey(tierID))
	if err != nil {
		return err
	}
	now := ctx.GetTxTimestamp()
	if tier == nil || now < tier.StartTime || now > tier.EndTime {
		return ErrTierInactive
	}

	maxGasPrice, err := fixedpoint.Parse(config.MaxGasPrice)
	if err != nil {
		return ErrInvalidAmount("sale", config.MaxGasPrice)
	}
	if maxGasPrice.Sign() > 0 && ctx.GetGasPrice().Cmp(maxGasPrice) > 0 {
		return ErrGasPriceTooHigh
	}

	whitelisted, err := l.gate.IsWhitelisted(ctx, participant, tierID, proof)
	if err != nil {
		return err
	}
	if !whitelisted {
		return ErrNotWhitelisted
	}

	value, err := fixedpoint.Parse(amount)
	if err != nil {
		return ErrInvalidAmount("contribution", amount)
	}
	minContribution, err := fixedpoint.Parse(config.MinContribution)
	if err != nil {
		return ErrInvalidAmount("sale", config.MinContribution)
	}
	if value.Cmp(minContribution) < 0 {
		return ErrBelowMinimum
	}

	tierPrice, err := fixedpoint.Parse(tier.UnitPrice)
	if err != nil {
		return ErrInvalidAmount("tier", tier.UnitPrice)
	}
	tokens := fixedpoint.TokensFor(value, tierPrice)

	contribution, err := getContribution(ctx, l.contributionKey(participant, tierID))
	if err != nil {
		return err
	}
	allocated, err := fixedpoint.Parse(contribution.TokensAllocated)
	if err != nil {
		return ErrInvalidAmount("contribution", contribution.TokensAllocated)
	}
	maxPerWallet, err := fixedpoint.Parse(tier.MaxAllocationPerWallet)
	if err != nil {
		return ErrInvalidAmount("tier", tier.MaxAllocationPerWallet)
	}
	remainingWallet := new(big.Int).Sub(maxPerWallet, allocated)
	if tokens.Cmp(remainingWallet) > 0 {
		return ErrExceedsWalletCap
	}

	tierSold, err := fixedpoint.Parse(tier.TotalSold)
	if err != nil {
		return ErrInvalidAmount("tier", tier.TotalSold)
	}
	totalAllocation, err := fixedpoint.Parse(tier.TotalAllocation)
	if err != nil {
		return ErrInvalidAmount("tier", tier.TotalAllocation)
	}
	remainingTier := new(big.Int).Sub(totalAllocation, tierSold)
	if tokens.Cmp(remainingTier) > 0 {
		return ErrExceedsTierCap
	}

	totalRaised, err := fixedpoint.Parse(config.TotalRaised)
	if err != nil {
		return ErrInvalidAmount("sale", config.TotalRaised)
	}
	hardCap, err := fixedpoint.Parse(config.HardCap)
	if err != nil {
		return ErrInvalidAmount("sale", config.HardCap)
	}
	if new(big.Int).Add(totalRaised, value).Cmp(hardCap) > 0 {
		return ErrExceedsHardCap
	}

	bonus := big.NewInt(0)
	referrerOut := ""
	if !state.IsZeroAddress(referrer) {
		normalizedReferrer, err := state.NormalizeAddress(referrer)
		if err != nil {
			return state.NewCustomError(http.StatusBadRequest, "invalid referrer address", err)
		}
		if !strings.EqualFold(normalizedReferrer, participant) {
			bonus = fixedpoint.Percent(tokens, ReferralBonusPercent)
			referrerOut = normalizedReferrer
		}
	}

	cumulative, err := fixedpoint.Parse(contribution.CumulativeAmount)
	if err != nil {
		return ErrInvalidAmount("contribution", contribution.CumulativeAmount)
	}
	referralBonus, err := fixedpoint.Parse(contribution.ReferralBonus)
	if err != nil {
		return ErrInvalidAmount("contribution", contribution.ReferralBonus)
	}

	contribution.CumulativeAmount = cumulative.Add(cumulative, value).String()
	contribution.TokensAllocated = allocated.Add(allocated, tokens).String()
	contribution.ReferralBonus = referralBonus.Add(referralBonus, bonus).String()
	if err := setContribution(ctx, l.contributionKey(participant, tierID), contribution); err != nil {
		return err
	}

	tier.TotalSold = tierSold.Add(tierSold, tokens).String()
	if err := setTier(ctx, l.tierKey(tierID), tier); err != nil {
		return err
	}

	totalSold, err := fixedpoint.Parse(config.TotalSold)
	if err != nil {
		return ErrInvalidAmount("sale", config.TotalSold)
	}
	config.TotalRaised = totalRaised.Add(totalRaised, value).String()
	config.TotalSold = totalSold.Add(totalSold, tokens).String()
	if err := setSaleConfig(ctx, l.configKey(), config); err != nil {
		return err
	}

	return emitEvent(ctx, "TokensPurchased", TokensPurchasedEvent{
		Sale:          l.handle,
		Buyer:         participant,
		Tier:          tierID,
		Amount:        value.String(),
		TokenAmount:   tokens.String(),
		ReferralBonus: bonus.String(),
		Referrer:      referrerOut,
		TierTotalSold: tier.TotalSold,
		TotalRaised:   config.TotalRaised,
		TotalSold:     config.TotalSold,
	})
}

// FinalizeSale locks in the outcome: success if the soft cap was reached.
// Callable once, by the owner, after the window closes or the hard cap is
// hit.
func (l *Ledger) FinalizeSale(ctx state.TransactionContext) error {
	if _, err := l.requireOwner(ctx); err != nil {
		return err
	}

	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if config == nil {
		return state.NewCustomError(http.StatusBadRequest, "sale is not configured", nil)
	}
	if config.IsFinalized {
		return ErrAlreadyFinalized
	}

	totalRaised, err := fixedpoint.Parse(config.TotalRaised)
	if err != nil {
		return ErrInvalidAmount("sale", config.TotalRaised)
	}
	hardCap, err := fixedpoint.Parse(config.HardCap)
	if err != nil {
		return ErrInvalidAmount("sale", config.HardCap)
	}
	softCap, err := fixedpoint.Parse(config.SoftCap)
	if err != nil {
		return ErrInvalidAmount("sale", config.SoftCap)
	}

	if ctx.GetTxTimestamp() < config.EndTime && totalRaised.Cmp(hardCap) < 0 {
		return state.NewCustomError(http.StatusBadRequest, "sale window still open and hard cap not reached", nil)
	}

	config.IsFinalized = true
	config.Successful = totalRaised.Cmp(softCap) >= 0
	if err := setSaleConfig(ctx, l.configKey(), config); err != nil {
		return err
	}

	return emitEvent(ctx, "SaleFinalized", SaleFinalizedEvent{
		Sale:        l.handle,
		TotalRaised: config.TotalRaised,
		TotalSold:   config.TotalSold,
		Successful:  config.Successful,
	})
}

// ClaimInitialUnlock pays the TGE share of a participant's allocation and
// opens a vesting schedule for the remainder. Requires a successful
// finalization.
func (l *Ledger) ClaimInitialUnlock(ctx state.TransactionContext, tierID uint8) error {
	participant, err := state.Sender(ctx)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if config == nil || !config.IsFinalized || !config.Successful {
		return state.NewCustomError(http.StatusBadRequest, "sale is not finalized with a success outcome", nil)
	}

	if tierID < 1 || tierID > whitelist.MaxTier {
		return ErrInvalidTier
	}

	params, err := getVestingParams(ctx, l.vestingParamsKey())
	if err != nil {
		return err
	}
	if params == nil {
		return state.NewCustomError(http.StatusBadRequest, "vesting parameters are not configured", nil)
	}

	contribution, err := getContribution(ctx, l.contributionKey(participant, tierID))
	if err != nil {
		return err
	}
	allocated, err := fixedpoint.Parse(contribution.TokensAllocated)
	if err != nil {
		return ErrInvalidAmount("contribution", contribution.TokensAllocated)
	}
	if allocated.Sign() <= 0 || contribution.HasClaimedInitialUnlock {
		return ErrNothingToClaim
	}

	referralBonus, err := fixedpoint.Parse(contribution.ReferralBonus)
	if err != nil {
		return ErrInvalidAmount("contribution", contribution.ReferralBonus)
	}

	total := new(big.Int).Add(allocated, referralBonus)
	tgeAmount := fixedpoint.Percent(total, params.TGEPercent)
	remainder := new(big.Int).Sub(total, tgeAmount)

	contribution.HasClaimedInitialUnlock = true
	if err := setContribution(ctx, l.contributionKey(participant, tierID), contribution); err != nil {
		return err
	}

	now := ctx.GetTxTimestamp()
	var scheduleID uint64
	if remainder.Sign() > 0 {
		scheduleID, err = l.vesting.CreateScheduleFrom(ctx, l.handle, participant, remainder.String(), now, params.Cliff, params.Duration)
		if err != nil {
			return err
		}
	}

	return emitEvent(ctx, "TGEClaimed", TGEClaimedEvent{
		Sale:         l.handle,
		User:         participant,
		Tier:         tierID,
		Amount:       tgeAmount.String(),
		VestedAmount: remainder.String(),
		ScheduleID:   scheduleID,
	})
}

// ClaimRefund returns a participant's paid-in amount for one tier after a
// failed sale, exactly once.
func (l *Ledger) ClaimRefund(ctx state.TransactionContext, tierID uint8) error {
	participant, err := state.Sender(ctx)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if config == nil || !config.IsFinalized || config.Successful {
		return state.NewCustomError(http.StatusBadRequest, "sale is not finalized with a failure outcome", nil)
	}

	if tierID < 1 || tierID > whitelist.MaxTier {
		return ErrInvalidTier
	}

	contribution, err := getContribution(ctx, l.contributionKey(participant, tierID))
	if err != nil {
		return err
	}
	refund, err := fixedpoint.Parse(contribution.CumulativeAmount)
	if err != nil {
		return ErrInvalidAmount("contribution", contribution.CumulativeAmount)
	}
	if refund.Sign() <= 0 {
		return ErrNothingToClaim
	}

	contribution.CumulativeAmount = "0"
	if err := setContribution(ctx, l.contributionKey(participant, tierID), contribution); err != nil {
		return err
	}

	return emitEvent(ctx, "RefundClaimed", RefundClaimedEvent{
		Sale:   l.handle,
		User:   participant,
		Tier:   tierID,
		Amount: refund.String(),
	})
}

// PauseSale blocks contributions until UnpauseSale.
func (l *Ledger) PauseSale(ctx state.TransactionContext) error {
	return l.setPaused(ctx, true)
}

func (l *Ledger) UnpauseSale(ctx state.TransactionContext) error {
	return l.setPaused(ctx, false)
}

func (l *Ledger) setPaused(ctx state.TransactionContext, paused bool) error {
	if _, err := l.requireOwner(ctx); err != nil {
		return err
	}

	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if config == nil {
		return state.NewCustomError(http.StatusBadRequest, "sale is not configured", nil)
	}

	config.IsPaused = paused
	if err := setSaleConfig(ctx, l.configKey(), config); err != nil {
		return err
	}

	name := "SaleUnpaused"
	if paused {
		name = "SalePaused"
	}
	return emitEvent(ctx, name, SalePausedEvent{Sale: l.handle, Paused: paused})
}

// WithdrawFunds moves the raised funds not yet withdrawn to the owner.
// Requires a successful finalization.
func (l *Ledger) WithdrawFunds(ctx state.TransactionContext) error {
	owner, err := l.requireOwner(ctx)
	if err != nil {
		return err
	}

	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return err
	}
	if config == nil || !config.IsFinalized || !config.Successful {
		return state.NewCustomError(http.StatusBadRequest, "sale is not finalized with a success outcome", nil)
	}

	totalRaised, err := fixedpoint.Parse(config.TotalRaised)
	if err != nil {
		return ErrInvalidAmount("sale", config.TotalRaised)
	}

	withdrawnAsBytes, err := ctx.GetState(l.withdrawnKey())
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get withdrawn total", err)
	}
	withdrawn := big.NewInt(0)
	if withdrawnAsBytes != nil {
		if _, ok := withdrawn.SetString(string(withdrawnAsBytes), 10); !ok {
			return ErrInvalidAmount("sale", string(withdrawnAsBytes))
		}
	}

	withdrawable := new(big.Int).Sub(totalRaised, withdrawn)
	if withdrawable.Sign() <= 0 {
		return ErrNothingToWithdraw
	}

	withdrawn.Add(withdrawn, withdrawable)
	if err := ctx.PutState(l.withdrawnKey(), []byte(withdrawn.String())); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set withdrawn total", err)
	}

	return emitEvent(ctx, "FundsWithdrawn", FundsWithdrawnEvent{
		Sale:           l.handle,
		To:             owner,
		Amount:         withdrawable.String(),
		TotalWithdrawn: withdrawn.String(),
	})
}

// GetSaleConfig returns the current configuration and running totals.
func (l *Ledger) GetSaleConfig(ctx state.TransactionContext) (*SaleConfig, error) {
	config, err := getSaleConfig(ctx, l.configKey())
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, state.NewCustomError(http.StatusNotFound, "sale is not configured", nil)
	}
	return config, nil
}

// GetTier returns one tier's configuration and totals.
func (l *Ledger) GetTier(ctx state.TransactionContext, tierID uint8) (*Tier, error) {
	if tierID < 1 || tierID > whitelist.MaxTier {
		return nil, ErrInvalidTier
	}
	tier, err := getTier(ctx, l.tierKey(tierID))
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, state.NewCustomError(http.StatusNotFound, fmt.Sprintf("tier %d is not configured", tierID), nil)
	}
	return tier, nil
}

// GetUserContribution returns the accounting record for one participant and
// tier. Participants without contributions get a zeroed record.
func (l *Ledger) GetUserContribution(ctx state.TransactionContext, participant string, tierID uint8) (*Contribution, error) {
	participant, err := state.NormalizeAddress(participant)
	if err != nil {
		return nil, state.NewCustomError(http.StatusBadRequest, "invalid participant address", err)
	}
	if tierID < 1 || tierID > whitelist.MaxTier {
		return nil, ErrInvalidTier
	}
	return getContribution(ctx, l.contributionKey(participant, tierID))
}

// GetVestingParams returns the configured TGE split, or nil when unset.
func (l *Ledger) GetVestingParams(ctx state.TransactionContext) (*VestingParams, error) {
	return getVestingParams(ctx, l.vestingParamsKey())
}
