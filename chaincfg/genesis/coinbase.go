package genesis

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// standardCoinbaseSigScript pushes bits 0x1d00ffff, the extra nonce 4
	// and "The Times 03/Jan/2009 Chancellor on brink of second bailout for banks".
	standardCoinbaseSigScript = "04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73"

	// standardCoinbasePkScript is a pay-to-pubkey script.
	standardCoinbasePkScript = "4104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac"

	// standardCoinbaseValue is 50 coins in base units.
	standardCoinbaseValue = 50 * 100000000
)

// StandardCoinbase returns a fresh copy of the coinbase transaction the block
// format places in every genesis block it creates. Its txid is
// 4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b.
func StandardCoinbase() *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: 0xffffffff,
		},
		SignatureScript: mustDecodeHex(standardCoinbaseSigScript),
		Sequence:        0xffffffff,
	})
	tx.AddTxOut(&wire.TxOut{
		Value:    standardCoinbaseValue,
		PkScript: mustDecodeHex(standardCoinbasePkScript),
	})
	tx.LockTime = 0
	return tx
}

// mustDecodeHex panics on malformed input. It is only ever called with the
// hard-coded scripts above.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
