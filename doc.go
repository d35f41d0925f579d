// Package solid is a hands-on tour of the five SOLID design principles,
// written as small, self-contained Go packages — each principle shown
// twice: the anti-pattern, and the refactoring that dissolves it.
//
// 🚀 What is solid?
//
//	A didactic library that brings together, one package per principle:
//		• srp — Single Responsibility: an invoice split into calculation,
//		  rendering and persistence
//		• ocp — Open/Closed: polymorphic shape areas vs. a type-switch
//		• lsp — Liskov Substitution: birds that fly, and one that must not
//		• isp — Interface Segregation: narrow device capabilities
//		• dip — Dependency Inversion: a consumer wired by constructor injection
//
// ✨ Why choose solid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Both sides shown – every package keeps its Legacy* anti-pattern
//     next to the refactored design, so the difference is testable
//   - Pure semantics – sentinel errors, functional options, example tests
//
// Under the hood, everything is organized into five subpackages:
//
//	srp/ — invoice domain: Total, Renderer, Repository (memory & file)
//	ocp/ — Shape capability, SumAreas, YAML shape catalog with a registry
//	lsp/ — Bird vs. Flyer capabilities, Migrate over substitutable flyers
//	isp/ — Printer/Scanner/Faxer capabilities, multi-function vs. compact
//	dip/ — DataProvider abstraction, injected Consumer, stub-friendly
//
// Quick ASCII example (the dip wiring):
//
//	    Consumer ──▶ DataProvider (abstraction)
//	                   ▲        ▲
//	          StaticProvider  DelayProvider
//
//	the consumer never names a concrete provider; tests swap in a stub.
//
// Each subpackage carries an example_test.go walkthrough; examples/ holds a
// runnable tour and cmd/solid a small CLI demonstrating every principle.
//
//	go get github.com/katalvlaran/solid
package solid
