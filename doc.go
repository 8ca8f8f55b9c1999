/*
Package funccall shows how Go treats functions as values: passing callbacks,
returning functions, and capturing variables in closures.

# Overview

Five small entry points cover the basics. Each one logs what it is about to
do through the package logger, then does it:

	funccall.Call(func() int { return 7 })              // 7
	funccall.ReturnFour()()                             // 4
	funccall.CallWithArgs(add, 2, 3)                    // add(2, 3)
	funccall.PrintAndReturn("same")                     // "same"
	funccall.ReturnLambda(3)(5)                         // 15

# Functional Types

Named function types carry small combinators, in the same spirit as
io.Reader adapters:

	Thunk[V]       func() V       Call, Map, Tap, Memoize
	BiFunc[L,R,V]  func(L, R) V   Call, Partial
	Lambda[N]      func(N) N      Call, Then

Constant builds a Thunk from a value and Identity is the Lambda that
composes with anything and changes nothing:

	double := Lambda[int](func(x int) int { return x * 2 })
	double.Then(Identity[int]())(21) // 42

# Logging

Output goes through go.uber.org/zap. The default logger writes console text
to stdout. Swap it with SetLogger, or build one from the environment:

	cfg, err := funccall.LoadConfig()
	if err != nil {
	    return err
	}
	log, err := funccall.NewLogger(cfg, os.Stderr)
	if err != nil {
	    return err
	}
	defer funccall.SetLogger(log)()

WriteFunc turns any func([]byte) (int, error) into a log destination. Tee
fans lines out to several sinks and Prefix marks each line:

	sink := funccall.WriteFunc(os.Stderr.Write).Tee(funccall.WriteFunc(file.Write)).Prefix("[demo] ")
*/
package funccall
