package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/bcdannyboy/squeeks/greeks"
	"github.com/bcdannyboy/squeeks/squeeks"
	"github.com/joho/godotenv"
	"github.com/xhhuango/json"
)

type optionReport struct {
	Params greeks.OptionParams `json:"params"`
	Greeks greeks.Result       `json:"greeks"`
	Lambda *float64            `json:"lambda,omitempty"`
}

type squeekReport struct {
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

func main() {
	// .env is optional; flags override whatever it supplies
	_ = godotenv.Load()

	instrument := flag.String("instrument", "option", "option, squeeth or liquidity")

	spot := flag.Float64("spot", 100, "underlying or pool price")
	strike := flag.Float64("strike", 100, "strike price")
	expiry := flag.Float64("expiry", 1, "time to expiry in years")
	rate := flag.Float64("rate", envFloat("RISK_FREE_RATE", 0.05), "risk-free rate")
	yield := flag.Float64("yield", 0, "dividend yield")
	vol := flag.Float64("vol", 0.2, "volatility")
	optType := flag.String("type", "call", "option type: call or put")

	normFactor := flag.Float64("norm-factor", 1, "squeeth normalization factor")

	lower := flag.Float64("lower", 0, "liquidity range lower bound")
	upper := flag.Float64("upper", 0, "liquidity range upper bound")
	liquidity := flag.Float64("liquidity", 0, "virtual liquidity (derived from reserves when 0)")
	reserveA := flag.Float64("reserve-a", 0, "pool reserves of the token multiplying sqrt(lower)")
	reserveB := flag.Float64("reserve-b", 0, "pool reserves of the token dividing sqrt(upper)")

	flag.Parse()

	var report interface{}
	var err error
	switch *instrument {
	case "option":
		report, err = optionGreeks(*spot, *strike, *expiry, *rate, *yield, *vol, greeks.OptionType(*optType))
	case "squeeth":
		report, err = squeethGreeks(*spot, *normFactor, *vol)
	case "liquidity":
		report, err = liquidityGreeks(*lower, *upper, *spot, *liquidity, *reserveA, *reserveB)
	default:
		err = fmt.Errorf("unknown instrument %q", *instrument)
	}
	if err != nil {
		log.Fatalf("computing %s greeks: %v", *instrument, err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("marshalling report: %v", err)
	}
	fmt.Println(string(out))
}

func optionGreeks(s, k, t, r, q, sigma float64, typ greeks.OptionType) (optionReport, error) {
	params, err := greeks.NewOptionParams(s, k, t, r, q, sigma, typ)
	if err != nil {
		return optionReport{}, err
	}
	result, err := greeks.Greeks(params)
	if err != nil {
		return optionReport{}, err
	}

	report := optionReport{Params: params, Greeks: result}
	if lambda, err := greeks.Lambda(params); err == nil {
		report.Lambda = &lambda
	}
	return report, nil
}

func squeethGreeks(price, normFactor, iv float64) (squeekReport, error) {
	params, err := squeeks.Squeeth(price, normFactor, iv)
	if err != nil {
		return squeekReport{}, err
	}
	return squeekReport{
		Value: params.Mark(),
		Delta: params.Delta(),
		Gamma: params.Gamma(),
		Theta: params.Theta(),
		Vega:  params.Vega(),
	}, nil
}

func liquidityGreeks(lower, upper, price, liquidity, reserveA, reserveB float64) (squeekReport, error) {
	if liquidity == 0 {
		var err error
		liquidity, err = squeeks.VirtualLiquidity(lower, upper, reserveA, reserveB)
		if err != nil {
			return squeekReport{}, err
		}
	}
	params, err := squeeks.NewLiquidityParams(lower, upper, price, liquidity)
	if err != nil {
		return squeekReport{}, err
	}
	return squeekReport{
		Value: params.Mark(),
		Delta: params.Delta(),
		Gamma: params.Gamma(),
		Theta: params.Theta(),
		Vega:  params.Vega(),
	}, nil
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("parsing %s=%q: %v", key, v, err)
	}
	return f
}
