package component

// Wallet is the currency a character carries.
type Wallet struct {
	Coins int
}

func (w *Wallet) Currency() int { return w.Coins }

func (w *Wallet) Add(amount int) {
	if amount > 0 {
		w.Coins += amount
	}
}

func (w *Wallet) Remove(amount int) {
	w.Coins -= amount
	if w.Coins < 0 {
		w.Coins = 0
	}
}

var WalletComponent = NewComponent[Wallet]()
