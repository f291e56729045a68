// Package ml implements the bag-of-words text classifier: a TF-IDF
// vectorizer feeding a multinomial Naive Bayes model.
//
// Tokens are lower-cased runs of two or more word characters. IDF is
// smoothed and rows are L2-normalized. The classifier uses Laplace
// smoothing with alpha = 1.
package ml
