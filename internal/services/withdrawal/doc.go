/*
Package withdrawal turns a user's claimed tips into a payout.

A withdrawal is assembled in three steps:

 1. LimitTips picks which claimed tips are included: largest first, at most
    Limits.MaxCount, trimmed from the smallest end until the sum fits
    Limits.MaxTotal.
 2. The fee is computed over the selected total by fees.Calculator.
 3. The wallet is debited by the full total, the tips are marked withdrawn,
    and a Withdrawal record is written; the payout is total minus fee.

Usage:

	svc := withdrawal.NewService(tipRepo, walletRepo, withdrawalRepo,
	    cacheService, fees.NewCalculator(feeCfg), limits)

	preview, err := svc.Preview(ctx, userID)
	w, err := svc.Withdraw(ctx, userID, invoice)

Error Handling:

- ErrNothingToWithdraw: no claimed tips fit the limits
- ErrFeeExceedsTotal: the selection is too small to fund its own fee
- ErrInsufficientBalance: the wallet cannot cover the selected total
*/
package withdrawal
