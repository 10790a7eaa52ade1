package vtwire_test

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/anirudhraja/vtwire"
	"github.com/anirudhraja/vtwire/proto/vtgate"
	"github.com/anirudhraja/vtwire/proto/vtrpc"
)

func ExampleCodec() {
	c, err := vtwire.New()
	if err != nil {
		log.Fatal(err)
	}

	req, err := vtgate.NewExecuteBatchKeyspaceIdsRequest(c.Registry())
	if err != nil {
		log.Fatal(err)
	}
	caller, err := vtrpc.NewCallerID(c.Registry())
	if err != nil {
		log.Fatal(err)
	}
	caller.SetPrincipal("alice")
	req.SetCallerId(caller)
	req.SetAsTransaction(true)

	data, err := c.Encode(req)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hex.EncodeToString(data))

	got, err := vtgate.NewExecuteBatchKeyspaceIdsRequest(c.Registry())
	if err != nil {
		log.Fatal(err)
	}
	if err := c.Decode(data, got); err != nil {
		log.Fatal(err)
	}
	fmt.Println(got.CallerId().Principal(), got.AsTransaction())
	// Output:
	// 0a070a05616c6963652801
	// alice true
}
