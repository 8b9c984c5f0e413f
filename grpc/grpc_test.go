package chainmsggrpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/config"
	chainmsggrpc "github.com/blockberries/chainmsg/grpc"
	"github.com/blockberries/chainmsg/market"
	chainmsgtest "github.com/blockberries/chainmsg/testing"
	"github.com/blockberries/chainmsg/tx"
	"github.com/blockberries/chainmsg/types"
)

// startServer starts a gRPC server on a random port and returns
// the listener address and a cleanup function.
func startServer(t *testing.T, srv *chainmsggrpc.Server) (string, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := grpc.NewServer()
	srv.Register(s)

	go func() {
		if err := s.Serve(lis); err != nil {
			// Ignore errors from graceful stop.
		}
	}()

	return lis.Addr().String(), func() {
		s.GracefulStop()
	}
}

func dial(t *testing.T, addr string) *chainmsggrpc.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := chainmsggrpc.Dial(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return client
}

func setup(t *testing.T) (*tx.Registry, *chainmsggrpc.Client) {
	t.Helper()
	reg, err := tx.NewDefaultRegistry(config.Default())
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}
	addr, cleanup := startServer(t, chainmsggrpc.NewServer(reg, nil))
	t.Cleanup(cleanup)
	client := dial(t, addr)
	t.Cleanup(func() { client.Close() })
	return reg, client
}

func swap() market.MsgSwap {
	return market.MsgSwap{
		Trader:    chainmsgtest.AccountID(1),
		OfferCoin: chainmsgtest.Coin("uluna", "1000000"),
		AskDenom:  chainmsg.MustParseDenom("uusd"),
	}
}

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec("cramberry")
	if codec == nil {
		t.Fatal("cramberry codec not registered")
	}
	in := types.MsgSwap{
		Trader:    "terra1trader",
		OfferCoin: &types.Coin{Denom: "uluna", Amount: "5"},
		AskDenom:  "uusd",
	}
	data, err := codec.Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out types.MsgSwap
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Trader != in.Trader || out.AskDenom != in.AskDenom || out.OfferCoin == nil || *out.OfferCoin != *in.OfferCoin {
		t.Fatalf("codec round-trip failed: got %+v", out)
	}
}

func TestGRPC_TypeURLs(t *testing.T) {
	reg, client := setup(t)
	urls, err := client.TypeURLs(context.Background())
	if err != nil {
		t.Fatalf("TypeURLs: %v", err)
	}
	want := reg.TypeURLs()
	if len(urls) != len(want) {
		t.Fatalf("expected %d type URLs, got %d", len(want), len(urls))
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("type URL %d: got %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestGRPC_ValidateAccepts(t *testing.T) {
	reg, client := setup(t)
	body, err := reg.BodyToWire(tx.Body{Msgs: []chainmsg.Msg{swap()}, Memo: "m"})
	if err != nil {
		t.Fatalf("BodyToWire: %v", err)
	}
	resp, err := client.Validate(context.Background(), body)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("expected valid body, got %+v", resp)
	}
	if len(resp.TypeURLs) != 1 || resp.TypeURLs[0] != market.TypeURLMsgSwap {
		t.Fatalf("unexpected type URLs: %v", resp.TypeURLs)
	}
}

func TestGRPC_ValidateRejects(t *testing.T) {
	reg, client := setup(t)
	good, err := reg.Pack(swap())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	w := swap().Encode()
	w.OfferCoin = nil
	bad, err := chainmsggrpc.CramberryCodec{}.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	resp, err := client.Validate(context.Background(), types.TxBody{
		Messages: []types.Any{good, {TypeURL: market.TypeURLMsgSwap, Value: bad}},
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if resp.Valid {
		t.Fatal("expected invalid body")
	}
	if resp.Index != 1 {
		t.Fatalf("expected failing index 1, got %d", resp.Index)
	}
	if resp.Kind != string(chainmsg.KindMissingField) || resp.Field != "offer_coin" {
		t.Fatalf("unexpected failure: kind=%q field=%q", resp.Kind, resp.Field)
	}
}

func TestGRPC_ValidateUnknownTypeURL(t *testing.T) {
	_, client := setup(t)
	resp, err := client.Validate(context.Background(), types.TxBody{
		Messages: []types.Any{{TypeURL: "/cosmos.bank.v1beta1.MsgSend"}},
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if resp.Valid || resp.Kind != "" || resp.Error == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
