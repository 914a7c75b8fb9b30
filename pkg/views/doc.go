// Package views builds the widget trees the storefront serves: the product
// catalog, product detail, shopping cart, contact form, and notification
// surfaces. Every function returns a tree that passes widget.Validate, and
// the data-driven views degrade to explicit empty states instead of
// rendering hollow containers.
package views
