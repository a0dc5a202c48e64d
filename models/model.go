package models

// Precision is the smallest currency unit handled by wallet arithmetic.
// Every bonus is rounded to it before being credited.
const Precision = 2
